// SPDX-License-Identifier: MIT

// Package seqio reads and writes sequence files. A sequence file holds the
// sequence on its first line; anything after the first newline is ignored.
package seqio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// MaxLineBytes caps the length of a sequence line.
const MaxLineBytes = 1 << 30

// Read returns the first line of r without its line terminator. An empty
// input yields an empty sequence.
func Read(r io.Reader) ([]byte, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}

		return []byte{}, nil
	}

	return bytes.TrimSuffix(bytes.Clone(sc.Bytes()), []byte("\r")), nil
}

// ReadFile returns the sequence stored in the file at path.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: %w", err)
	}
	defer f.Close()

	seq, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("seqio: read %s: %w", path, err)
	}

	return seq, nil
}

// WriteFile stores seq at path as a single line.
func WriteFile(path string, seq []byte) error {
	data := make([]byte, 0, len(seq)+1)
	data = append(append(data, seq...), '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("seqio: %w", err)
	}

	return nil
}

// Preview returns at most n leading symbols of seq, followed by "..." when
// seq is longer.
func Preview(seq []byte, n int) string {
	if len(seq) <= n {
		return string(seq)
	}

	return string(seq[:n]) + "..."
}
