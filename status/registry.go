package status

import "sync/atomic"

// Metric names recorded by the engine loop
const (
	TickCount     = "tick.count"
	TickDeltaMs   = "tick.delta_ms"
	EventsApplied = "events.applied"
	EventsIgnored = "events.ignored"
	RenderMicros  = "frame.render_us"
)

// Registry groups counters and gauges
// The engine loop writes, the status line and shutdown log read
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns the number of metrics of all kinds
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Values flattens every metric into a map, ints widened to float64
func (r *Registry) Values() map[string]float64 {
	out := make(map[string]float64, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out[k] = float64(v.Load())
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out[k] = v.Get()
	})
	return out
}
