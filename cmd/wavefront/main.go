// SPDX-License-Identifier: MIT

// Command wavefront computes the edit distance of two sequences with a group
// of workers sweeping the dynamic-programming table one anti-diagonal at a
// time.
//
//	wavefront run fileA fileB --workers 4       in-process group
//	wavefront seq fileA fileB                    sequential reference
//	wavefront generate 10000                     write inputA_10000.txt / inputB_10000.txt
//	wavefront hub --listen :8080                 relay for multi-process groups
//	wavefront coordinate fileA fileB --group g   publish inputs, print the result
//	wavefront worker --group g --rank 0          one member of a hub group
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
