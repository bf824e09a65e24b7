package particle

// StateChange identifies the kind of state advancement requested from a
// stated policy.
type StateChange int

const (
	// Local fires once per particle, immediately after that particle's
	// update.
	Local StateChange = iota

	// Global fires once per frame, after the whole scene has been stepped.
	Global
)

func (c StateChange) String() string {
	switch c {
	case Local:
		return "local"
	case Global:
		return "global"
	default:
		return "unknown"
	}
}

// Stated is implemented by policies that carry internal state requiring
// advancement along the simulation. Notify must tolerate being called for
// both change kinds; a policy interested in only one ignores the other.
type Stated interface {
	Notify(change StateChange)
}

// Evolution is the update policy for payload type D. Evolve mutates the
// payload in place, once per simulation step.
type Evolution[D any] interface {
	Evolve(d *D)
}

// EvolutionFunc adapts a plain function to an [Evolution] policy.
type EvolutionFunc[D any] func(d *D)

func (f EvolutionFunc[D]) Evolve(d *D) { f(d) }

// Renderer is the per-particle draw policy for payload type D. Render must
// not mutate the payload.
type Renderer[D any] interface {
	Render(d *D)
}

// RenderFunc adapts a plain function to a [Renderer] policy.
type RenderFunc[D any] func(d *D)

func (f RenderFunc[D]) Render(d *D) { f(d) }
