// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/BeBeatrice/Parallel-Computing/internal/seqio"
	"github.com/BeBeatrice/Parallel-Computing/levenshtein"
	"github.com/BeBeatrice/Parallel-Computing/wavefront"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <fileA> <fileB>",
		Short: "Compute the edit distance with an in-process group of workers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqA, seqB, err := readPair(args[0], args[1])
			if err != nil {
				return err
			}

			res, err := wavefront.RunLocal(cmd.Context(), seqA, seqB, a.cfg.Workers, a.engineOptions()...)
			if err != nil {
				return err
			}
			a.report(res.Distance, res.Workers, res.Elapsed)

			return nil
		},
	}
	addEngineFlags(cmd)
	cmd.Flags().Int("workers", 4, "number of workers in the group")

	return cmd
}

func newSeqCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seq <fileA> <fileB>",
		Short: "Compute the edit distance with the sequential two-row algorithm",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			seqA, seqB, err := readPair(args[0], args[1])
			if err != nil {
				return err
			}

			start := time.Now()
			d, _, err := levenshtein.Distance(seqA, seqB, nil)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(a.out, "Edit Distance: %d\n", d)
			fmt.Fprintf(a.out, "Elapsed time: %s seconds\n", seconds(elapsed))

			return nil
		},
	}
}

// addEngineFlags declares the flags every command running the engine takes.
func addEngineFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("threads", 1, "goroutines evaluating each worker's rows")
	f.Duration("step-timeout", wavefront.DefaultStepTimeout, "bound on every communication step (0 disables)")
}

func readPair(pathA, pathB string) ([]byte, []byte, error) {
	seqA, err := seqio.ReadFile(pathA)
	if err != nil {
		return nil, nil, fmt.Errorf("input A: %w", err)
	}
	seqB, err := seqio.ReadFile(pathB)
	if err != nil {
		return nil, nil, fmt.Errorf("input B: %w", err)
	}

	return seqA, seqB, nil
}
