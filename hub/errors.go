// SPDX-License-Identifier: MIT

package hub

import "errors"

var (
	// ErrUnknownGroup is returned for a group id the hub does not hold.
	ErrUnknownGroup = errors.New("hub: unknown group")

	// ErrSizeMismatch is returned when a group is ensured with a size other
	// than the one it was created with.
	ErrSizeMismatch = errors.New("hub: group size mismatch")

	// ErrAlreadyPublished is returned when inputs or a result are published
	// twice with different content.
	ErrAlreadyPublished = errors.New("hub: already published")

	// ErrBadRequest is returned for malformed requests.
	ErrBadRequest = errors.New("hub: bad request")

	// ErrUnexpectedStatus is returned for any other non-success response.
	ErrUnexpectedStatus = errors.New("hub: unexpected status")
)

// Error codes carried in response bodies.
const (
	codeAborted          = "aborted"
	codeUnknownGroup     = "unknown_group"
	codeSizeMismatch     = "size_mismatch"
	codeAlreadyPublished = "already_published"
	codeBadRequest       = "bad_request"
	codeInvalidRank      = "invalid_rank"
	codeDuplicate        = "duplicate_contribution"
	codeCanceled         = "canceled"
	codeInternal         = "internal"
)
