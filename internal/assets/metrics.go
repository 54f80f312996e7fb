package assets

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	bundleLoadsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "assetd",
			Subsystem: "manager",
			Name:      "bundle_loads_total",
			Help:      "Total bundles accepted into the resolution chain",
		},
	)

	bundleRejectsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "assetd",
			Subsystem: "manager",
			Name:      "bundle_rejects_total",
			Help:      "Total bundles rejected for failing validation",
		},
	)

	// bundlesLive tracks the daemon's one long-lived manager. Short-lived
	// managers (clones, CLI runs) share the gauge and will skew it.
	bundlesLive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "assetd",
			Subsystem: "manager",
			Name:      "bundles_live",
			Help:      "Bundles currently held in the resolution chain",
		},
	)

	resolveMissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assetd",
			Subsystem: "manager",
			Name:      "resolve_misses_total",
			Help:      "Total resolution requests no bundle could satisfy",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(bundleLoadsTotal, bundleRejectsTotal, bundlesLive, resolveMissesTotal)
}
