// SPDX-License-Identifier: MIT

package theta

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	imagesComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "thetasharp",
		Subsystem: "theta",
		Name:      "images_computed_total",
		Help:      "θ# images built (cache misses) by mode.",
	}, []string{"mode"})

	kernelBoundDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "thetasharp",
		Subsystem: "theta",
		Name:      "kernel_bound_duration_seconds",
		Help:      "Wall time of kernel-bound computations by rank method.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 12),
	}, []string{"method"})

	matrixCells = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "thetasharp",
		Subsystem: "theta",
		Name:      "matrix_cells",
		Help:      "rows*cols of assembled θ# matrices.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
	})
)

const (
	modeSymbolic  = "symbolic"
	modeEvaluated = "evaluated"
)
