// Package metrics provides scene-level measurements collected during a run.
//
// A [Metric] observes the whole scene once per iteration; the [Collector]
// adapts a set of metrics to an engine hook and records the per-step series
// for plotting and export.
package metrics

import (
	"math"

	"github.com/san-kum/stardust/engine"
	"github.com/san-kum/stardust/internal/motion"
	"github.com/san-kum/stardust/particle"
)

// Metric observes the scene once per iteration.
type Metric interface {
	Name() string
	Observe(s particle.Scene[motion.Dot])
	Value() float64
	Reset()
}

// Population reports the current scene size.
type Population struct {
	n int
}

func (m *Population) Name() string                         { return "population" }
func (m *Population) Observe(s particle.Scene[motion.Dot]) { m.n = s.Len() }
func (m *Population) Value() float64                       { return float64(m.n) }
func (m *Population) Reset()                               { m.n = 0 }

// MeanAge reports the mean payload age across the scene.
type MeanAge struct {
	mean float64
}

func (m *MeanAge) Name() string { return "mean_age" }

func (m *MeanAge) Observe(s particle.Scene[motion.Dot]) {
	if s.Len() == 0 {
		m.mean = 0
		return
	}
	sum := 0.0
	for _, p := range s {
		sum += float64(p.Data().Age)
	}
	m.mean = sum / float64(s.Len())
}

func (m *MeanAge) Value() float64 { return m.mean }
func (m *MeanAge) Reset()         { m.mean = 0 }

// Spread reports the root-mean-square distance of dots from their centroid.
type Spread struct {
	rms float64
}

func (m *Spread) Name() string { return "spread" }

func (m *Spread) Observe(s particle.Scene[motion.Dot]) {
	if s.Len() == 0 {
		m.rms = 0
		return
	}
	var cx, cy float64
	for _, p := range s {
		d := p.Data()
		cx += d.X
		cy += d.Y
	}
	cx /= float64(s.Len())
	cy /= float64(s.Len())

	var sum float64
	for _, p := range s {
		d := p.Data()
		sum += (d.X-cx)*(d.X-cx) + (d.Y-cy)*(d.Y-cy)
	}
	m.rms = math.Sqrt(sum / float64(s.Len()))
}

func (m *Spread) Value() float64 { return m.rms }
func (m *Spread) Reset()         { m.rms = 0 }

// Collector observes a set of metrics every iteration and records their
// per-step series.
type Collector struct {
	metrics []Metric
	series  map[string][]float64
}

// NewCollector builds a collector over the given metrics.
func NewCollector(ms ...Metric) *Collector {
	c := &Collector{
		metrics: ms,
		series:  make(map[string][]float64),
	}
	for _, m := range ms {
		m.Reset()
	}
	return c
}

// Hook returns an engine hook observing the current scene; attach it to the
// before-next phase so it sees the post-step, post-draw state.
func (c *Collector) Hook() engine.Hook[motion.Dot] {
	return func(e *engine.Automatic[motion.Dot]) {
		c.ObserveScene(*e.Scene())
	}
}

// ObserveScene feeds the scene to every metric and appends to the series.
func (c *Collector) ObserveScene(s particle.Scene[motion.Dot]) {
	for _, m := range c.metrics {
		m.Observe(s)
		c.series[m.Name()] = append(c.series[m.Name()], m.Value())
	}
}

// Series returns the recorded per-step series keyed by metric name.
func (c *Collector) Series() map[string][]float64 { return c.series }

// Final returns the last observed value of every metric.
func (c *Collector) Final() map[string]float64 {
	out := make(map[string]float64, len(c.metrics))
	for _, m := range c.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}
