package motion

import "github.com/san-kum/stardust/particle"

// Point is a recorded trail position.
type Point struct {
	X, Y float64
}

// Trail is a stated per-particle renderer: drawing records the current
// position, and the Local notification fades the oldest point once per
// simulation step. Decay is tied to update, not draw, so trails shorten at
// simulation rate even when frames are skipped.
type Trail struct {
	Capacity int

	points []Point
}

func (t *Trail) Render(d *Dot) {
	t.points = append(t.points, Point{X: d.X, Y: d.Y})
	if t.Capacity > 0 && len(t.points) > t.Capacity {
		t.points = t.points[len(t.points)-t.Capacity:]
	}
}

// Notify fades the trail on Local changes.
func (t *Trail) Notify(c particle.StateChange) {
	if c == particle.Local && len(t.points) > 0 {
		t.points = t.points[1:]
	}
}

// Points returns the recorded positions, oldest first.
func (t *Trail) Points() []Point { return t.points }
