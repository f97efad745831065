// Package parallelcomputing computes the edit distance of two sequences with
// a group of workers that sweep the dynamic-programming table one
// anti-diagonal at a time.
//
// 🚀 What is inside?
//
//	A wavefront engine and everything needed to run it:
//		• wavefront:   partitioner, rolling history, per-diagonal step,
//		               the Communicator contract and an in-process group
//		• hub:         HTTP relay so workers can run as separate processes
//		• levenshtein: sequential reference with optional edit script
//		• generator:   seeded random test inputs
//
// ✨ Guarantees
//
//   - Every worker returns the same distance, equal to the sequential one,
//     for any number of workers.
//   - A stalled peer fails the run with an error instead of hanging it.
//   - One failing worker aborts the whole group.
//
// Layout:
//
//	wavefront/     — core engine (Compute, RunLocal, LocalGroup)
//	hub/           — gin server + client Communicator
//	levenshtein/   — sequential Distance
//	generator/     — Sequence, Pair
//	internal/      — config, logging, telemetry, seqio
//	cmd/wavefront/ — run, seq, generate, hub, coordinate, worker
//
// Quick picture of anti-diagonal i+j = 3 on a 4x4 table (cells marked *):
//
//	    . . . *
//	    . . * .
//	    . * . .
//	    * . . .
//
// Cells on one diagonal depend only on the two before it, so they can be
// split across workers and computed at the same time.
//
//	go install github.com/BeBeatrice/Parallel-Computing/cmd/wavefront@latest
package parallelcomputing
