// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

// package metrics records prometheus metrics for vector growth.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "vector"

// Growth collects metrics about backing store reallocations.
type Growth struct {
	Registry *prometheus.Registry
	Grows    prometheus.Counter
	Copied   prometheus.Counter
	Capacity prometheus.Gauge
	Factor   prometheus.Histogram
}

// NewGrowth creates Growth metrics registered with a new registry.
func NewGrowth() *Growth {
	g := &Growth{
		Registry: prometheus.NewRegistry(),
		Grows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "grow_total",
			Help: "Number of backing store reallocations.",
		}),
		Copied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "grow_slots_total",
			Help: "Number of slots in the old backing stores of reallocations.",
		}),
		Capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "capacity",
			Help: "Capacity after the most recent reallocation.",
		}),
		Factor: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "grow_factor",
			Help:    "Ratio of new to old capacity for each reallocation.",
			Buckets: []float64{1.5, 2, 4, 8, 16},
		}),
	}
	g.Registry.MustRegister(g.Grows, g.Copied, g.Capacity, g.Factor)
	return g
}

// Observe a reallocation, has the signature required by vector.Vector.SetGrowHook.
func (g *Growth) Observe(oldCap, newCap int) {
	g.Grows.Inc()
	g.Copied.Add(float64(oldCap))
	g.Capacity.Set(float64(newCap))
	if oldCap > 0 {
		g.Factor.Observe(float64(newCap) / float64(oldCap))
	}
}

// Write the gathered metrics in prometheus text exposition format.
func (g *Growth) Write(w io.Writer) error {
	families, err := g.Registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
