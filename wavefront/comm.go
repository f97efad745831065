// SPDX-License-Identifier: MIT
// Package: wavefront
//
// comm.go — the two communication capabilities the driver needs.
//
// Contract:
//   • Pipe carries exactly one integer per (from, to, tag). Tags are diagonal
//     indices, so values from different diagonals cannot be confused.
//   • Collective operations are keyed by tag as well and complete only once
//     every member of the group has joined the same tag.
//   • All operations block until done, the context ends, or the group is
//     aborted. Implementations return ErrAborted (wrapped) for the latter.

package wavefront

import "context"

// Pipe is a tagged point-to-point channel between members of a group.
type Pipe interface {
	// Send delivers value to member to under tag.
	Send(ctx context.Context, to, tag, value int) error
	// Recv waits for the value member from sent under tag.
	Recv(ctx context.Context, from, tag int) (int, error)
}

// Collective is a group-wide barrier with merge.
type Collective interface {
	// Allgather contributes chunk under tag and returns every member's chunk
	// indexed by rank. The returned slices must be treated as read-only.
	Allgather(ctx context.Context, tag int, chunk []int) ([][]int, error)
	// Barrier waits until every member reached tag.
	Barrier(ctx context.Context, tag int) error
}

// Communicator is one member's view of a fixed-size group.
type Communicator interface {
	Pipe
	Collective
	// Rank is this member's 0-based identity.
	Rank() int
	// Size is the number of members in the group.
	Size() int
}
