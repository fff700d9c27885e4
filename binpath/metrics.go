// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package binpath

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup results reported in findprog_lookups_total.
const (
	resultHit      = "hit"
	resultScanned  = "scanned"
	resultNotFound = "not_found"
)

// Reasons reported in findprog_scan_dirs_skipped_total.
const (
	skipMissing    = "missing"
	skipNotDir     = "not_dir"
	skipUnreadable = "unreadable"
	skipInvalid    = "invalid"
)

var (
	lookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "findprog_lookups_total",
			Help: "Total number of program lookups by result",
		},
		[]string{"result"},
	)

	scansTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "findprog_scans_total",
			Help: "Total number of search-path population passes",
		},
	)

	scanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "findprog_scan_duration_seconds",
			Help:    "Duration of search-path population passes in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	scanDirsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "findprog_scan_dirs_skipped_total",
			Help: "Search-path directories skipped during population, by reason",
		},
		[]string{"reason"},
	)

	entriesAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "findprog_entries_added_total",
			Help: "Total number of basenames added to binary caches",
		},
	)
)

func recordLookup(result string) {
	lookupsTotal.WithLabelValues(result).Inc()
}

func recordScan(elapsed time.Duration, added int) {
	scansTotal.Inc()
	scanDuration.Observe(elapsed.Seconds())
	entriesAdded.Add(float64(added))
}

func recordSkip(reason string) {
	scanDirsSkipped.WithLabelValues(reason).Inc()
}
