// SPDX-License-Identifier: MIT
// Package: wavefront
//
// options.go — functional options for Compute and RunLocal.
//
// Contract:
//   • Options are functional (type Option func(*config)) and applied in order;
//     the last one wins.
//   • Option constructors validate and panic on meaningless inputs; the
//     engine itself never panics.
//   • No hidden globals: everything a run needs flows through config.

package wavefront

import (
	"log/slog"
	"time"
)

// Defaults (single source of truth).
const (
	// DefaultStepTimeout bounds every communication step of the driver.
	DefaultStepTimeout = 30 * time.Second

	// DefaultLocalParallelism evaluates a worker's chunk on one goroutine.
	DefaultLocalParallelism = 1
)

// Option customizes a run.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	stepTimeout time.Duration
	threads     int
	metrics     bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:      slog.Default(),
		stepTimeout: DefaultStepTimeout,
		threads:     DefaultLocalParallelism,
		metrics:     true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes engine logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("wavefront: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithStepTimeout bounds each Send, Recv, Allgather and Barrier issued by the
// driver. A step that misses the deadline fails with ErrPeerTimeout. Zero
// disables the bound; negative values panic.
func WithStepTimeout(d time.Duration) Option {
	if d < 0 {
		panic("wavefront: WithStepTimeout(d<0)")
	}

	return func(c *config) { c.stepTimeout = d }
}

// WithLocalParallelism evaluates each worker's chunk with k goroutines.
// Cells of one diagonal are independent once the history is known, so the
// result does not depend on k. Panics if k < 1.
func WithLocalParallelism(k int) Option {
	if k < 1 {
		panic("wavefront: WithLocalParallelism(k<1)")
	}

	return func(c *config) { c.threads = k }
}

// WithMetrics toggles Prometheus accounting (on by default).
func WithMetrics(enabled bool) Option {
	return func(c *config) { c.metrics = enabled }
}
