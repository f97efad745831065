// SPDX-License-Identifier: MIT

package hub

import "bytes"

// Report is the outcome a designated worker publishes for a group.
type Report struct {
	Rank           int     `json:"rank"`
	Distance       int     `json:"distance"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Workers        int     `json:"workers"`
}

// Inputs are the two sequences every worker of a group computes on. They
// travel base64-encoded so that arbitrary bytes arrive unchanged.
type Inputs struct {
	A []byte `json:"a"`
	B []byte `json:"b"`
}

func (in Inputs) equal(other Inputs) bool {
	return bytes.Equal(in.A, other.A) && bytes.Equal(in.B, other.B)
}

type sizeRequest struct {
	Size int `json:"size"`
}

type groupResponse struct {
	ID   string `json:"id"`
	Size int    `json:"size"`
}

type sendRequest struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Tag   int `json:"tag"`
	Value int `json:"value"`
}

type recvResponse struct {
	Value int `json:"value"`
}

type allgatherRequest struct {
	Rank  int   `json:"rank"`
	Tag   int   `json:"tag"`
	Chunk []int `json:"chunk"`
}

type allgatherResponse struct {
	Chunks [][]int `json:"chunks"`
}

type abortRequest struct {
	Reason string `json:"reason"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
