package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/stardust/internal/motion"
	"github.com/san-kum/stardust/particle"
)

func TestCanvasCountsStepsOnGlobal(t *testing.T) {
	c := NewCanvas(20, 5, 0)
	c.Out = &bytes.Buffer{}

	c.Notify(particle.Global)
	c.Notify(particle.Global)
	c.Notify(particle.Local) // per-particle changes never count as steps

	if c.Steps() != 2 {
		t.Errorf("steps = %d, want 2", c.Steps())
	}
}

func TestCanvasRendersDots(t *testing.T) {
	c := NewCanvas(20, 5, 0)
	var out bytes.Buffer
	c.Out = &out

	scene := make(particle.Scene[motion.Dot], 0, 1)
	scene.Add(particle.New(motion.Dot{X: 3, Y: 2}, motion.Velocity(),
		particle.RenderFunc[motion.Dot](func(*motion.Dot) {})))

	c.RenderScene(scene)

	if !strings.Contains(out.String(), "*") {
		t.Error("young dot glyph missing from frame")
	}
	if !strings.Contains(out.String(), "particles 1") {
		t.Error("status line missing particle count")
	}
}

func TestCanvasDrawsTrails(t *testing.T) {
	c := NewCanvas(20, 5, 0)
	var out bytes.Buffer
	c.Out = &out

	trail := &motion.Trail{Capacity: 5}
	scene := make(particle.Scene[motion.Dot], 0, 1)
	scene.Add(particle.New(motion.Dot{X: 4, Y: 1}, motion.Velocity(), trail))

	c.RenderScene(scene)

	if len(trail.Points()) != 1 {
		t.Errorf("trail recorded %d points during draw, want 1", len(trail.Points()))
	}
}

func TestPlotHandlesEmptySeries(t *testing.T) {
	got := Plot("spread", nil, 5)
	if !strings.Contains(got, "no data") {
		t.Errorf("empty series plot = %q", got)
	}

	graph := Plot("spread", []float64{1, 2, 3}, 5)
	if graph == "" {
		t.Error("expected non-empty graph")
	}
}

func TestSparkline(t *testing.T) {
	s := Sparkline([]float64{0, 1, 2, 3}, 10)
	if len([]rune(s)) != 4 {
		t.Errorf("sparkline length = %d, want 4", len([]rune(s)))
	}

	flat := Sparkline([]float64{5, 5, 5}, 10)
	if flat != "▁▁▁" {
		t.Errorf("flat series sparkline = %q", flat)
	}

	if Sparkline(nil, 10) != "" {
		t.Error("nil series should yield empty sparkline")
	}
}
