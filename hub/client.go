// SPDX-License-Identifier: MIT

package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/BeBeatrice/Parallel-Computing/wavefront"
)

// Client talks to a hub Server. It is safe for concurrent use.
//
// The underlying http.Client carries no overall timeout: long polls are
// bounded by the caller's context, which for engine traffic is the
// wavefront step timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the hub at baseURL (e.g. "http://host:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// WithHTTPClient replaces the transport, e.g. with an httptest client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc

	return c
}

// Healthy returns nil when the hub answers its health check.
func (c *Client) Healthy(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil)
}

// CreateGroup creates a group of size members and returns its id.
func (c *Client) CreateGroup(ctx context.Context, size int) (string, error) {
	var resp groupResponse
	if err := c.do(ctx, http.MethodPost, "/v1/groups", sizeRequest{Size: size}, &resp); err != nil {
		return "", err
	}

	return resp.ID, nil
}

// EnsureGroup creates group id of size members unless it already exists.
// It fails with ErrSizeMismatch when the existing group has another size.
func (c *Client) EnsureGroup(ctx context.Context, id string, size int) error {
	return c.do(ctx, http.MethodPut, groupPath(id, ""), sizeRequest{Size: size}, nil)
}

// DeleteGroup aborts and forgets group id.
func (c *Client) DeleteGroup(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, groupPath(id, ""), nil, nil)
}

// PublishInputs makes a and b available to every worker of group id.
func (c *Client) PublishInputs(ctx context.Context, id string, a, b []byte) error {
	return c.do(ctx, http.MethodPut, groupPath(id, "/inputs"), Inputs{A: a, B: b}, nil)
}

// Inputs waits until the inputs of group id are published.
func (c *Client) Inputs(ctx context.Context, id string) (a, b []byte, err error) {
	var resp Inputs
	if err := c.do(ctx, http.MethodGet, groupPath(id, "/inputs"), nil, &resp); err != nil {
		return nil, nil, err
	}

	return resp.A, resp.B, nil
}

// Abort aborts group id; every pending and later call of its members fails
// with wavefront.ErrAborted.
func (c *Client) Abort(ctx context.Context, id, reason string) error {
	return c.do(ctx, http.MethodPost, groupPath(id, "/abort"), abortRequest{Reason: reason}, nil)
}

// PublishResult records the outcome of group id.
func (c *Client) PublishResult(ctx context.Context, id string, r Report) error {
	return c.do(ctx, http.MethodPut, groupPath(id, "/result"), r, nil)
}

// Result waits until the outcome of group id is published.
func (c *Client) Result(ctx context.Context, id string) (Report, error) {
	var r Report
	err := c.do(ctx, http.MethodGet, groupPath(id, "/result"), nil, &r)

	return r, err
}

// Member returns the Communicator of rank in group id of size members.
func (c *Client) Member(id string, rank, size int) wavefront.Communicator {
	return &member{client: c, id: id, rank: rank, size: size}
}

func groupPath(id, suffix string) string {
	return "/v1/groups/" + url.PathEscape(id) + suffix
}

// do sends in as JSON (when non-nil) and decodes the response into out
// (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("hub: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("hub: build %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("hub: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("hub: decode %s %s: %w", method, path, err)
	}

	return nil
}

// decodeError maps an error response back to the sentinel it was built from.
func decodeError(resp *http.Response) error {
	var e errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var sentinel error
	switch e.Error {
	case codeAborted:
		sentinel = wavefront.ErrAborted
	case codeUnknownGroup:
		sentinel = ErrUnknownGroup
	case codeSizeMismatch:
		sentinel = ErrSizeMismatch
	case codeAlreadyPublished:
		sentinel = ErrAlreadyPublished
	case codeInvalidRank:
		sentinel = wavefront.ErrInvalidRank
	case codeDuplicate:
		sentinel = wavefront.ErrDuplicateContribution
	case codeBadRequest:
		sentinel = ErrBadRequest
	default:
		sentinel = ErrUnexpectedStatus
	}

	return fmt.Errorf("%w: %s", sentinel, e.Message)
}

// member is one rank of a hub group.
type member struct {
	client *Client
	id     string
	rank   int
	size   int
}

func (m *member) Rank() int { return m.rank }
func (m *member) Size() int { return m.size }

func (m *member) Send(ctx context.Context, to, tag, value int) error {
	return m.client.do(ctx, http.MethodPost, groupPath(m.id, "/send"),
		sendRequest{From: m.rank, To: to, Tag: tag, Value: value}, nil)
}

func (m *member) Recv(ctx context.Context, from, tag int) (int, error) {
	q := url.Values{}
	q.Set("from", strconv.Itoa(from))
	q.Set("to", strconv.Itoa(m.rank))
	q.Set("tag", strconv.Itoa(tag))

	var resp recvResponse
	if err := m.client.do(ctx, http.MethodGet, groupPath(m.id, "/recv?"+q.Encode()), nil, &resp); err != nil {
		return 0, err
	}

	return resp.Value, nil
}

func (m *member) Allgather(ctx context.Context, tag int, chunk []int) ([][]int, error) {
	var resp allgatherResponse
	if err := m.client.do(ctx, http.MethodPost, groupPath(m.id, "/allgather"),
		allgatherRequest{Rank: m.rank, Tag: tag, Chunk: chunk}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Chunks) != m.size {
		return nil, fmt.Errorf("%w: hub returned %d chunks for %d members", wavefront.ErrReconcile, len(resp.Chunks), m.size)
	}

	return resp.Chunks, nil
}

func (m *member) Barrier(ctx context.Context, tag int) error {
	_, err := m.Allgather(ctx, tag, nil)

	return err
}

var _ wavefront.Communicator = (*member)(nil)
