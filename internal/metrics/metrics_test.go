package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/stardust/internal/motion"
	"github.com/san-kum/stardust/particle"
)

func dotScene(dots ...motion.Dot) particle.Scene[motion.Dot] {
	scene := make(particle.Scene[motion.Dot], 0, len(dots))
	for _, d := range dots {
		scene.Add(particle.New(d, motion.Velocity(),
			particle.RenderFunc[motion.Dot](func(*motion.Dot) {})))
	}
	return scene
}

func TestPopulation(t *testing.T) {
	m := &Population{}
	m.Observe(dotScene(motion.Dot{}, motion.Dot{}, motion.Dot{}))
	if m.Value() != 3 {
		t.Errorf("population = %v, want 3", m.Value())
	}

	m.Observe(dotScene())
	if m.Value() != 0 {
		t.Errorf("population of empty scene = %v, want 0", m.Value())
	}
}

func TestMeanAge(t *testing.T) {
	m := &MeanAge{}
	m.Observe(dotScene(motion.Dot{Age: 2}, motion.Dot{Age: 4}))
	if m.Value() != 3 {
		t.Errorf("mean age = %v, want 3", m.Value())
	}

	m.Observe(dotScene())
	if m.Value() != 0 {
		t.Errorf("mean age of empty scene = %v, want 0", m.Value())
	}
}

func TestSpread(t *testing.T) {
	m := &Spread{}
	m.Observe(dotScene(motion.Dot{X: -1}, motion.Dot{X: 1}))
	if math.Abs(m.Value()-1) > 1e-12 {
		t.Errorf("spread = %v, want 1", m.Value())
	}
}

func TestCollectorRecordsSeries(t *testing.T) {
	c := NewCollector(&Population{}, &MeanAge{})

	c.ObserveScene(dotScene(motion.Dot{Age: 1}))
	c.ObserveScene(dotScene(motion.Dot{Age: 1}, motion.Dot{Age: 3}))

	pop := c.Series()["population"]
	if len(pop) != 2 || pop[0] != 1 || pop[1] != 2 {
		t.Errorf("population series = %v, want [1 2]", pop)
	}

	final := c.Final()
	if final["mean_age"] != 2 {
		t.Errorf("final mean_age = %v, want 2", final["mean_age"])
	}
}
