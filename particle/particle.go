package particle

// Particle couples one payload value with one evolution policy and one
// render policy. Both policies persist for the particle's lifetime.
type Particle[D any] struct {
	data      D
	evolution Wrapped[Evolution[D]]
	renderer  Wrapped[Renderer[D]]
}

// New builds a particle from a payload and its two policies. Policies must
// be non-nil; a nil policy is a composition bug, not a runtime condition.
func New[D any](data D, evolution Evolution[D], renderer Renderer[D]) *Particle[D] {
	if evolution == nil {
		panic("particle: nil evolution policy")
	}
	if renderer == nil {
		panic("particle: nil render policy")
	}
	return &Particle[D]{
		data:      data,
		evolution: Wrap(evolution),
		renderer:  Wrap(renderer),
	}
}

// Update advances the payload through the evolution policy, then notifies
// both policies of the local state change: evolution first, renderer second.
// The renderer is notified on update rather than on draw so that
// particle-local render state (a decaying trail, say) advances every
// simulation step even when the frame is never drawn.
func (p *Particle[D]) Update() {
	p.evolution.Policy.Evolve(&p.data)

	p.evolution.Notify(Local)
	p.renderer.Notify(Local)
}

// Draw renders the current payload. Drawing fires no notifications; the
// once-per-frame advance is the engine's Global notification.
func (p *Particle[D]) Draw() {
	p.renderer.Policy.Render(&p.data)
}

// Data returns a copy of the payload.
func (p *Particle[D]) Data() D { return p.data }

// DataRef exposes the payload for in-place mutation between steps.
func (p *Particle[D]) DataRef() *D { return &p.data }

// EvolutionPolicy exposes the wrapped evolution policy.
func (p *Particle[D]) EvolutionPolicy() *Wrapped[Evolution[D]] { return &p.evolution }

// RenderPolicy exposes the wrapped render policy.
func (p *Particle[D]) RenderPolicy() *Wrapped[Renderer[D]] { return &p.renderer }

// Scene is the ordered collection of particles owned by an engine. Order is
// update traversal order and carries no other meaning.
type Scene[D any] []*Particle[D]

// Add appends a particle to the scene.
func (s *Scene[D]) Add(p *Particle[D]) { *s = append(*s, p) }

// Pop removes and returns the last particle, or nil for an empty scene.
func (s *Scene[D]) Pop() *Particle[D] {
	if len(*s) == 0 {
		return nil
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

// Len returns the number of particles in the scene.
func (s Scene[D]) Len() int { return len(s) }
