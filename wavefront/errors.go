// SPDX-License-Identifier: MIT
// Package: wavefront
//
// errors.go — sentinel errors for the wavefront engine.
//
// Error policy:
//   • Only package-level sentinels are exposed; match them with errors.Is.
//   • Context (diagonal, rank, operation) is attached with %w wrapping.
//   • The engine never panics on user input; option constructors panic on
//     nonsensical arguments (programmer error).

package wavefront

import "errors"

var (
	// ErrInvalidWorkers indicates a group size below one.
	ErrInvalidWorkers = errors.New("wavefront: worker count must be >= 1")

	// ErrInvalidRank indicates a worker identity outside [0, size).
	ErrInvalidRank = errors.New("wavefront: rank out of range")

	// ErrNilCommunicator indicates Compute was called without a transport.
	ErrNilCommunicator = errors.New("wavefront: nil communicator")

	// ErrBoundaryMismatch indicates the value handed over by the preceding
	// worker cannot belong to the same table as the local history: two
	// horizontally adjacent cells differ by more than one.
	ErrBoundaryMismatch = errors.New("wavefront: pipeline hand-off inconsistent with history")

	// ErrReconcile indicates the merged diagonal does not tile the band.
	ErrReconcile = errors.New("wavefront: reconciled diagonal has wrong shape")

	// ErrDuplicateContribution indicates a rank joined one collective round twice.
	ErrDuplicateContribution = errors.New("wavefront: duplicate contribution to collective")

	// ErrPeerTimeout indicates a communication step missed its deadline.
	ErrPeerTimeout = errors.New("wavefront: peer did not respond in time")

	// ErrAborted indicates the group was aborted by one of its members or
	// by the coordinator.
	ErrAborted = errors.New("wavefront: group aborted")

	// ErrDivergence indicates workers of one group returned different results.
	ErrDivergence = errors.New("wavefront: workers disagree on the result")
)
