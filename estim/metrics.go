// SPDX-License-Identifier: MIT

package estim

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	modeSequential = "sequential"
	modeParallel   = "parallel"
)

var (
	// groupsEstimated counts groups by the dispatch mode that produced them.
	groupsEstimated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sparseblock_estim_groups_total",
			Help: "Column groups estimated, by dispatch mode",
		},
		[]string{"mode"},
	)

	// fallbacks counts parallel batches discarded for a sequential rerun.
	fallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sparseblock_estim_fallbacks_total",
			Help: "Parallel estimation batches recomputed sequentially after a worker fault",
		},
	)

	batchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sparseblock_estim_batch_duration_seconds",
			Help:    "Wall time of an estimation batch, by final dispatch mode",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"mode"},
	)
)
