// SPDX-License-Identifier: MIT

// Package wavefront computes the Levenshtein edit distance of two byte
// sequences with a fixed group of cooperating workers that sweep the
// dynamic-programming table one anti-diagonal at a time.
//
// 🚀 What is a wavefront sweep?
//
//	Cells whose row+column sum to the same constant d form anti-diagonal d.
//	Under the edit-distance recurrence
//
//	    D[i][j] = min(D[i-1][j]+1, D[i][j-1]+1, D[i-1][j-1]+cost(i,j))
//
//	every cell on diagonal d depends only on diagonals d-1 and d-2, so the
//	cells of one diagonal can be split across workers and evaluated at once.
//
// ✨ Building blocks:
//   - Evaluate   — the recurrence for one cell (cell.go)
//   - Band       — valid row range of a diagonal (partition.go)
//   - Partition  — communication-free split of a band across workers
//   - History    — the replicated "previous" and "two-before" diagonals
//   - Pipe       — one tagged value from worker r to worker r+1 per diagonal
//   - Collective — rank-ordered merge of every worker's chunk (all-gather)
//   - Compute    — the driver that runs diagonals 1..n+m in lock-step
//
// ⚙️ Usage (in-process group):
//
//	res, err := wavefront.RunLocal(ctx, []byte("kitten"), []byte("sitting"), 4)
//	// res.Distance == 3
//
// Every worker of a group calls Compute with identical inputs and its own
// Communicator; LocalGroup provides one in memory, package hub provides one
// over HTTP. A worker that cannot reach its peers fails after the configured
// step timeout (WithStepTimeout) instead of blocking forever.
//
// Complexity:
//
//   - Time:   O(n·m / P) cell evaluations per worker, n+m collective rounds
//   - Memory: O(n) per worker (two history diagonals)
package wavefront
