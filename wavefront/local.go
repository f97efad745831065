// SPDX-License-Identifier: MIT

package wavefront

import (
	"context"
	"fmt"
	"sync"
)

// LocalGroup is an in-memory group transport. Pipe messages go through
// one-slot mailboxes keyed by (from, to, tag); collectives meet in rounds
// keyed by tag. It is safe for concurrent use by all members, and package
// hub serves it over HTTP to worker processes.
type LocalGroup struct {
	size int

	mu      sync.Mutex
	mail    map[mailKey]chan int
	rounds  map[int]*round
	cause   error
	done    chan struct{}
	aborted sync.Once
}

type mailKey struct {
	from, to, tag int
}

// round is one collective meeting. chunks is written under LocalGroup.mu
// until ready closes and is read-only afterwards.
type round struct {
	chunks   [][]int
	seen     []bool
	arrived  int
	departed int
	ready    chan struct{}
}

// NewLocalGroup creates a group of size members.
func NewLocalGroup(size int) (*LocalGroup, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, size)
	}

	return &LocalGroup{
		size:   size,
		mail:   make(map[mailKey]chan int),
		rounds: make(map[int]*round),
		done:   make(chan struct{}),
	}, nil
}

// Size returns the number of members.
func (g *LocalGroup) Size() int { return g.size }

// Member returns the Communicator of rank. It panics when rank is outside
// [0, Size()); ranks are fixed when the group is wired, so this is a
// programmer error.
func (g *LocalGroup) Member(rank int) Communicator {
	if rank < 0 || rank >= g.size {
		panic(fmt.Sprintf("wavefront: Member(%d) of group size %d", rank, g.size))
	}

	return &localMember{group: g, rank: rank}
}

// Abort fails every pending and future operation of every member with
// ErrAborted wrapping cause. Only the first call has an effect.
func (g *LocalGroup) Abort(cause error) {
	g.aborted.Do(func() {
		g.mu.Lock()
		g.cause = cause
		g.mu.Unlock()
		close(g.done)
	})
}

// Done is closed once the group is aborted.
func (g *LocalGroup) Done() <-chan struct{} { return g.done }

// Err returns nil while the group is healthy and the abort error afterwards.
func (g *LocalGroup) Err() error {
	select {
	case <-g.done:
	default:
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cause == nil {
		return ErrAborted
	}

	return fmt.Errorf("%w: %w", ErrAborted, g.cause)
}

func (g *LocalGroup) checkRank(rank int) error {
	if rank < 0 || rank >= g.size {
		return fmt.Errorf("%w: %d of %d", ErrInvalidRank, rank, g.size)
	}

	return nil
}

// mailbox returns the slot for k, creating it on first use by either side.
func (g *LocalGroup) mailbox(k mailKey) chan int {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch, ok := g.mail[k]
	if !ok {
		ch = make(chan int, 1)
		g.mail[k] = ch
	}

	return ch
}

func (g *LocalGroup) dropMailbox(k mailKey) {
	g.mu.Lock()
	delete(g.mail, k)
	g.mu.Unlock()
}

// arrive registers rank's chunk in the round of tag.
func (g *LocalGroup) arrive(rank, tag int, chunk []int) (*round, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rounds[tag]
	if !ok {
		r = &round{
			chunks: make([][]int, g.size),
			seen:   make([]bool, g.size),
			ready:  make(chan struct{}),
		}
		g.rounds[tag] = r
	}
	if r.seen[rank] {
		return nil, fmt.Errorf("%w: rank %d, tag %d", ErrDuplicateContribution, rank, tag)
	}

	r.seen[rank] = true
	r.chunks[rank] = append([]int{}, chunk...)
	r.arrived++
	if r.arrived == g.size {
		close(r.ready)
	}

	return r, nil
}

// depart forgets the round once every member has read it.
func (g *LocalGroup) depart(tag int, r *round) {
	g.mu.Lock()
	defer g.mu.Unlock()

	r.departed++
	if r.departed == g.size && g.rounds[tag] == r {
		delete(g.rounds, tag)
	}
}

// pending reports how many mailboxes and rounds are still held; tests use it
// to check that a finished computation leaves nothing behind.
func (g *LocalGroup) pending() (mailboxes, rounds int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.mail), len(g.rounds)
}

type localMember struct {
	group *LocalGroup
	rank  int
}

func (m *localMember) Rank() int { return m.rank }
func (m *localMember) Size() int { return m.group.size }

func (m *localMember) Send(ctx context.Context, to, tag, value int) error {
	if err := m.group.checkRank(to); err != nil {
		return err
	}
	if err := m.group.Err(); err != nil {
		return err
	}

	ch := m.group.mailbox(mailKey{from: m.rank, to: to, tag: tag})
	select {
	case ch <- value:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-m.group.done:
		return m.group.Err()
	}
}

func (m *localMember) Recv(ctx context.Context, from, tag int) (int, error) {
	if err := m.group.checkRank(from); err != nil {
		return 0, err
	}
	if err := m.group.Err(); err != nil {
		return 0, err
	}

	k := mailKey{from: from, to: m.rank, tag: tag}
	ch := m.group.mailbox(k)
	select {
	case v := <-ch:
		m.group.dropMailbox(k)

		return v, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-m.group.done:
		return 0, m.group.Err()
	}
}

func (m *localMember) Allgather(ctx context.Context, tag int, chunk []int) ([][]int, error) {
	if err := m.group.Err(); err != nil {
		return nil, err
	}

	r, err := m.group.arrive(m.rank, tag, chunk)
	if err != nil {
		return nil, err
	}

	select {
	case <-r.ready:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-m.group.done:
		return nil, m.group.Err()
	}
	m.group.depart(tag, r)

	return r.chunks, nil
}

func (m *localMember) Barrier(ctx context.Context, tag int) error {
	_, err := m.Allgather(ctx, tag, nil)

	return err
}
