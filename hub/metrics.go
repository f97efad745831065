// SPDX-License-Identifier: MIT

package hub

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	groupsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hub_groups_active",
		Help: "Groups currently held by the hub",
	})

	// messagesTotal counts pipeline values relayed between workers.
	messagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hub_messages_total",
		Help: "Pipeline messages relayed by the hub",
	})

	// roundsTotal counts collective rounds completed, one per tag and group.
	roundsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hub_collective_rounds_total",
		Help: "Collective rounds completed by the hub",
	})

	abortsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hub_aborts_total",
		Help: "Groups aborted through the hub",
	})
)
