package api

import (
	"time"

	"github.com/livedirtree/treerelay/tree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var syncCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "treerelay_syncs_total",
	Help: "The number of snapshots accepted",
})

var syncRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "treerelay_sync_rejections_total",
	Help: "The number of sync requests refused, by reason",
}, []string{"reason"})

var snapshotBytes = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "treerelay_snapshot_bytes",
	Help: "Size of the current snapshot",
})

var containerCount = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "treerelay_container_count",
	Help: "Top-level containers in the current snapshot",
})

var lastSync = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "treerelay_last_sync_timestamp_seconds",
	Help: "When the last snapshot was accepted",
})

func recordSync(snap *tree.Snapshot, at time.Time) {
	syncCount.Inc()
	snapshotBytes.Set(float64(len(snap.Bytes())))
	containerCount.Set(float64(len(snap.Containers())))
	lastSync.Set(float64(at.UnixNano()) / float64(time.Second))
}
