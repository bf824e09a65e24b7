package engine

import "github.com/san-kum/stardust/particle"

// SceneRenderer is the collection-level draw policy. RenderScene receives
// the whole scene for read-only rendering; implementations that also
// implement [particle.Stated] get the once-per-frame Global notification.
type SceneRenderer[D any] interface {
	RenderScene(s particle.Scene[D])
}

// SceneRenderFunc adapts a plain function to a [SceneRenderer].
type SceneRenderFunc[D any] func(s particle.Scene[D])

func (f SceneRenderFunc[D]) RenderScene(s particle.Scene[D]) { f(s) }

// Manual is the single-step simulation driver. It owns a scene and a
// collection-level render policy and performs no looping of its own.
type Manual[D any] struct {
	scene    particle.Scene[D]
	renderer particle.Wrapped[SceneRenderer[D]]
}

// NewManual builds a manual engine owning the given scene.
func NewManual[D any](scene particle.Scene[D], renderer SceneRenderer[D]) *Manual[D] {
	if renderer == nil {
		panic("engine: nil scene renderer")
	}
	return &Manual[D]{
		scene:    scene,
		renderer: particle.Wrap(renderer),
	}
}

// Step executes one simulation step: every particle updates once, in
// traversal order, then the scene renderer receives exactly one Global
// notification. The Global advance is never interleaved with particle
// updates and fires even for an empty scene.
func (m *Manual[D]) Step() {
	for _, p := range m.scene {
		p.Update()
	}
	m.renderer.Notify(particle.Global)
}

// Draw renders the current state of the scene. No notifications fire.
func (m *Manual[D]) Draw() {
	m.renderer.Policy.RenderScene(m.scene)
}

// Scene exposes the owned scene for mutation between steps.
func (m *Manual[D]) Scene() *particle.Scene[D] { return &m.scene }

// Renderer exposes the wrapped scene render policy.
func (m *Manual[D]) Renderer() *particle.Wrapped[SceneRenderer[D]] { return &m.renderer }
