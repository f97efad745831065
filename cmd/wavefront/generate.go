// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/BeBeatrice/Parallel-Computing/generator"
	"github.com/BeBeatrice/Parallel-Computing/internal/seqio"
	"github.com/spf13/cobra"
)

// previewLen is how many leading symbols generate echoes per sequence.
const previewLen = 20

func newGenerateCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "generate <length>",
		Short: "Write two random sequences of the given length to inputA_<n>.txt and inputB_<n>.txt",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("length %q: %w", args[0], err)
			}

			opts := []generator.Option{generator.WithAlphabet(a.cfg.Generator.Alphabet)}
			if a.cfg.Generator.Seed != 0 {
				opts = append(opts, generator.WithSeed(a.cfg.Generator.Seed))
			}
			seqA, seqB, err := generator.Pair(length, opts...)
			if err != nil {
				return err
			}

			fileA := filepath.Join(dir, fmt.Sprintf("inputA_%d.txt", length))
			fileB := filepath.Join(dir, fmt.Sprintf("inputB_%d.txt", length))
			if err := seqio.WriteFile(fileA, seqA); err != nil {
				return err
			}
			if err := seqio.WriteFile(fileB, seqB); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Generated two random sequences of length %d:\n", length)
			fmt.Fprintf(a.out, "A (first %d chars): %s\n", previewLen, seqio.Preview(seqA, previewLen))
			fmt.Fprintf(a.out, "B (first %d chars): %s\n", previewLen, seqio.Preview(seqB, previewLen))
			fmt.Fprintf(a.out, "Saved to: %s and %s\n", fileA, fileB)

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&dir, "dir", ".", "output directory")
	f.String("alphabet", "ACGT", "symbols to draw from")
	f.Int64("seed", 0, "random seed (0 = time-seeded)")

	return cmd
}
