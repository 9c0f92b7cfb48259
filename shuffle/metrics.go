// SPDX-License-Identifier: MIT

package shuffle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	expansionLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "thetasharp",
		Subsystem: "shuffle",
		Name:      "expansion_lookups_total",
		Help:      "Expansion cache lookups by result (hit, miss).",
	}, []string{"result"})

	expansionsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "thetasharp",
		Subsystem: "shuffle",
		Name:      "expansions_computed_total",
		Help:      "Basis expansions computed and written to the store.",
	})

	precomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "thetasharp",
		Subsystem: "shuffle",
		Name:      "precompute_duration_seconds",
		Help:      "Wall time of Precompute calls.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
	})
)

const (
	resultHit  = "hit"
	resultMiss = "miss"
)
