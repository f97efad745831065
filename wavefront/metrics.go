// SPDX-License-Identifier: MIT

package wavefront

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	// diagonalsTotal counts completed diagonals by kind ("band" or "empty").
	diagonalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wavefront_diagonals_total",
		Help: "Diagonals completed by a worker, by kind",
	}, []string{"kind"})

	cellsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wavefront_cells_total",
		Help: "Table cells evaluated by local workers",
	})

	// commWait observes how long the driver blocked in each communication step.
	commWait = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wavefront_comm_wait_seconds",
		Help:    "Time spent blocked in communication steps",
		Buckets: prometheus.ExponentialBuckets(0.000001, 10, 8),
	}, []string{"op"})
)

var (
	tracerOnce sync.Once
	tracer     trace.Tracer
)

// getTracer returns the package tracer, resolved on first use.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		tracer = otel.Tracer("github.com/BeBeatrice/Parallel-Computing/wavefront")
	})

	return tracer
}

func (c config) observeDiagonal(kind string, cells int) {
	if !c.metrics {
		return
	}
	diagonalsTotal.WithLabelValues(kind).Inc()
	if cells > 0 {
		cellsTotal.Add(float64(cells))
	}
}

func (c config) observeWait(op string, d time.Duration) {
	if !c.metrics {
		return
	}
	commWait.WithLabelValues(op).Observe(d.Seconds())
}
