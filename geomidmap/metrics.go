package geomidmap

import (
	"github.com/prometheus/client_golang/prometheus"
)

// rejection reasons for ids a finder assigned but the map refused
const (
	rejectInvalid   = "invalid"
	rejectNode      = "node"
	rejectUnknown   = "unknown"
	rejectDuplicate = "duplicate"
	rejectError     = "error"
)

type metrics struct {
	loads       prometheus.Counter
	entries     prometheus.Gauge
	rejections  *prometheus.CounterVec
	corrections prometheus.Counter
}

// newMetrics creates the engine collectors and registers them with reg
// when it is not nil. Registering two engines with the same registry
// panics.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		loads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geomid_geometry_loads_total",
			Help: "Number of geometry trees loaded.",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "geomid_map_entries",
			Help: "Number of geometry ids in the current map.",
		}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geomid_map_rejections_total",
			Help: "Geometry ids refused while building the map, by reason.",
		}, []string{"reason"}),
		corrections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geomid_alignment_corrections_total",
			Help: "Alignment corrections applied to geometry nodes.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.loads, m.entries, m.rejections, m.corrections)
	}
	return m
}
