package shos

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the state of an orbit simulation.
type Metrics struct {
	positionX     prometheus.Gauge
	positionY     prometheus.Gauge
	ticks         prometheus.Counter
	eccentricity  prometheus.Gauge
	semiMinorAxis prometheus.Gauge
}

// NewMetrics returns the orbit metrics, registered with the provided registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		positionX: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shos", Subsystem: "orbit", Name: "position_x",
			Help: "Position of the body along x in the caller's frame.",
		}),
		positionY: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shos", Subsystem: "orbit", Name: "position_y",
			Help: "Position of the body along y in the caller's frame.",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shos", Subsystem: "orbit", Name: "ticks_total",
			Help: "Number of ticks advanced.",
		}),
		eccentricity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shos", Subsystem: "orbit", Name: "eccentricity",
			Help: "Eccentricity of the orbit.",
		}),
		semiMinorAxis: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shos", Subsystem: "orbit", Name: "semi_minor_axis",
			Help: "Semi minor axis of the orbit.",
		}),
	}
	for _, c := range []prometheus.Collector{m.positionX, m.positionY, m.ticks, m.eccentricity, m.semiMinorAxis} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records the state of a tick.
func (m *Metrics) Observe(s State) {
	m.positionX.Set(s.X)
	m.positionY.Set(s.Y)
	m.ticks.Inc()
}

// SetElements records the elements of the orbit.
func (m *Metrics) SetElements(o *Orbit) {
	_, _, e, _, b, _ := o.Elements()
	m.eccentricity.Set(e)
	m.semiMinorAxis.Set(b)
}

// WriteToTextfile writes the gathered metrics in the text exposition format.
func WriteToTextfile(filename string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(filename, g)
}
