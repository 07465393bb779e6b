// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ingest

import "github.com/prometheus/client_golang/prometheus"

const (
	MetricRowsRead    = "rows_read_total"
	MetricRowsWritten = "rows_written_total"
	MetricRuns        = "runs_total"
)

var CounterRowsRead = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "ingester",
		Name:      MetricRowsRead,
		Help:      "Rows read from ingestion sources.",
	},
)

var CounterRowsWritten = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "ingester",
		Name:      MetricRowsWritten,
		Help:      "Rows written to ingestion artifacts.",
	},
	[]string{
		"artifact",
	},
)

var CounterRuns = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "ingester",
		Name:      MetricRuns,
		Help:      "Completed ingestion runs by outcome.",
	},
	[]string{
		"result",
	},
)

func init() {
	prometheus.MustRegister(CounterRowsRead)
	prometheus.MustRegister(CounterRowsWritten)
	prometheus.MustRegister(CounterRuns)
}
