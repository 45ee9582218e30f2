package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var LoadStatusAppliedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "load_status_applied_total",
		Help: "Total number of load status transitions applied from events",
	},
	[]string{"status"},
)

var StuckDrivers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "stuck_drivers",
		Help: "Number of drivers in on_load without an active load",
	},
)
