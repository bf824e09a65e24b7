package motion

import (
	"math"

	"github.com/san-kum/stardust/particle"
)

// Drift returns an evolution policy translating the dot by a fixed offset
// each step. Drift(5, 0) is the classic smoke-test policy.
func Drift(dx, dy float64) particle.EvolutionFunc[Dot] {
	return func(d *Dot) {
		d.X += dx
		d.Y += dy
		d.Age++
	}
}

// Velocity returns an evolution policy integrating the dot's own velocity.
func Velocity() particle.EvolutionFunc[Dot] {
	return func(d *Dot) {
		d.X += d.VX
		d.Y += d.VY
		d.Age++
	}
}

// Gravity returns an evolution policy applying constant downward
// acceleration on top of velocity integration.
func Gravity(g float64) particle.EvolutionFunc[Dot] {
	return func(d *Dot) {
		d.VY += g
		d.X += d.VX
		d.Y += d.VY
		d.Age++
	}
}

// Bounce returns an evolution policy that integrates velocity and reflects
// it at the given bounds.
func Bounce(width, height float64) particle.EvolutionFunc[Dot] {
	return func(d *Dot) {
		d.X += d.VX
		d.Y += d.VY
		if d.X < 0 || d.X > width {
			d.VX = -d.VX
			d.X = math.Max(0, math.Min(width, d.X))
		}
		if d.Y < 0 || d.Y > height {
			d.VY = -d.VY
			d.Y = math.Max(0, math.Min(height, d.Y))
		}
		d.Age++
	}
}

// Wobble is a stated evolution policy: it carries a phase of its own,
// advanced once per particle step via the Local notification, and drives a
// sinusoidal horizontal sway from it. Each particle gets its own instance.
type Wobble struct {
	Amplitude float64
	Step      float64

	phase float64
}

func (w *Wobble) Evolve(d *Dot) {
	d.X += w.Amplitude * math.Sin(w.phase)
	d.Y += d.VY
	d.Age++
}

// Notify advances the phase on Local changes; Global is ignored.
func (w *Wobble) Notify(c particle.StateChange) {
	if c == particle.Local {
		w.phase += w.Step
	}
}

// Phase returns the current phase, mostly for tests and stats panes.
func (w *Wobble) Phase() float64 { return w.phase }

// Pulse is a scene-wide beat: one instance is shared by every particle
// (via particle.Share). Its frame counter must advance exactly once per
// simulation frame, so it listens to Global, not Local; the engine only
// routes Global to the scene renderer, so the caller dispatches it to the
// shared handle from a before-next hook. On beat frames every holder
// reverses velocity.
type Pulse struct {
	Period int

	frame int
}

func (p *Pulse) Evolve(d *Dot) {
	d.X += d.VX
	d.Y += d.VY
	d.Age++
	if p.Period > 0 && p.frame > 0 && p.frame%p.Period == 0 {
		d.VX = -d.VX
		d.VY = -d.VY
	}
}

// Notify advances the beat once per frame.
func (p *Pulse) Notify(c particle.StateChange) {
	if c == particle.Global {
		p.frame++
	}
}

// Frame returns the number of Global advances observed.
func (p *Pulse) Frame() int { return p.frame }
