package file_system

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var persistFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "treerelay_persist_failures_total",
	Help: "The number of snapshot saves that failed",
})

var persistedBytes = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "treerelay_persisted_snapshot_bytes",
	Help: "Size of the last snapshot written to the store",
})
