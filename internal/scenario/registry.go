// Package scenario builds demo scenes from named policies and runs scripted
// simulation sequences loaded from YAML.
package scenario

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/stardust/engine"
	"github.com/san-kum/stardust/internal/config"
	"github.com/san-kum/stardust/internal/motion"
	"github.com/san-kum/stardust/internal/render"
	"github.com/san-kum/stardust/particle"
)

// EvolutionBuilder yields one evolution policy per call. It is invoked once
// per particle, so stated policies (wobble) get a fresh instance each while
// shared policies (pulse) return the same captured instance every time.
type EvolutionBuilder func() particle.Evolution[motion.Dot]

// RendererBuilder yields one per-particle render policy per call.
type RendererBuilder func() particle.Renderer[motion.Dot]

// evolutionEntry resolves a named evolution for one build. The second return
// is non-nil when the policy is shared scene-wide and expects the
// once-per-frame Global notification dispatched by the run loop.
type evolutionEntry func(cfg *config.Config) (EvolutionBuilder, particle.Stated)

// Registry maps policy names from configs and scenarios to constructors.
type Registry struct {
	evolutions map[string]evolutionEntry
	renderers  map[string]func(cfg *config.Config) RendererBuilder
}

// NewRegistry returns a registry with every built-in policy registered.
func NewRegistry() *Registry {
	r := &Registry{
		evolutions: make(map[string]evolutionEntry),
		renderers:  make(map[string]func(cfg *config.Config) RendererBuilder),
	}

	r.evolutions["drift"] = func(cfg *config.Config) (EvolutionBuilder, particle.Stated) {
		dx, dy := cfg.Param("dx", 5), cfg.Param("dy", 0)
		return func() particle.Evolution[motion.Dot] { return motion.Drift(dx, dy) }, nil
	}
	r.evolutions["velocity"] = func(cfg *config.Config) (EvolutionBuilder, particle.Stated) {
		return func() particle.Evolution[motion.Dot] { return motion.Velocity() }, nil
	}
	r.evolutions["gravity"] = func(cfg *config.Config) (EvolutionBuilder, particle.Stated) {
		g := cfg.Param("g", 0.05)
		return func() particle.Evolution[motion.Dot] { return motion.Gravity(g) }, nil
	}
	r.evolutions["bounce"] = func(cfg *config.Config) (EvolutionBuilder, particle.Stated) {
		w, h := float64(cfg.Width), float64(cfg.Height)
		return func() particle.Evolution[motion.Dot] { return motion.Bounce(w, h) }, nil
	}
	r.evolutions["wobble"] = func(cfg *config.Config) (EvolutionBuilder, particle.Stated) {
		amp, step := cfg.Param("amplitude", 1.0), cfg.Param("step", 0.2)
		return func() particle.Evolution[motion.Dot] {
			// stated: one phase per particle
			return &motion.Wobble{Amplitude: amp, Step: step}
		}, nil
	}
	r.evolutions["pulse"] = func(cfg *config.Config) (EvolutionBuilder, particle.Stated) {
		// shared: one beat for the whole scene, advanced by the run loop
		shared := particle.Share(motion.Pulse{Period: int(cfg.Param("period", 30))})
		return func() particle.Evolution[motion.Dot] { return shared.Policy() }, shared
	}

	r.renderers["none"] = func(cfg *config.Config) RendererBuilder {
		return func() particle.Renderer[motion.Dot] {
			return particle.RenderFunc[motion.Dot](func(*motion.Dot) {})
		}
	}
	r.renderers["canvas"] = r.renderers["none"] // dots are plotted by the scene renderer
	r.renderers["trail"] = func(cfg *config.Config) RendererBuilder {
		capacity := int(cfg.Param("trail", 12))
		return func() particle.Renderer[motion.Dot] {
			return &motion.Trail{Capacity: capacity}
		}
	}

	return r
}

// GetRenderer resolves a named per-particle render policy.
func (r *Registry) GetRenderer(name string, cfg *config.Config) (RendererBuilder, error) {
	fn, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("scenario: unknown render policy %q", name)
	}
	return fn(cfg), nil
}

// Build is one configured engine ready to run.
type Build struct {
	Engine *engine.Automatic[motion.Dot]
	Canvas *render.Canvas

	// Globals are shared policies expecting the once-per-frame Global
	// notification; the run loop dispatches it from its before-next hook.
	Globals []particle.Stated
}

// Build constructs a randomized scene and its automatic engine per the
// config.
func (r *Registry) Build(cfg *config.Config, rng *rand.Rand) (*Build, error) {
	entry, ok := r.evolutions[cfg.Evolution]
	if !ok {
		return nil, fmt.Errorf("scenario: unknown evolution policy %q", cfg.Evolution)
	}
	evolution, sharedGlobal := entry(cfg)

	renderer, err := r.GetRenderer(cfg.Renderer, cfg)
	if err != nil {
		return nil, err
	}

	scene := make(particle.Scene[motion.Dot], 0, cfg.Particles)
	for i := 0; i < cfg.Particles; i++ {
		dot := motion.Random(rng, float64(cfg.Width), float64(cfg.Height))
		scene.Add(particle.New(dot, evolution(), renderer()))
	}

	canvas := render.NewCanvas(cfg.Width, cfg.Height, cfg.FrameRate)
	b := &Build{
		Engine: engine.NewAutomatic(scene, canvas),
		Canvas: canvas,
	}
	if sharedGlobal != nil {
		b.Globals = append(b.Globals, sharedGlobal)
	}
	return b, nil
}

// Evolutions returns the registered evolution policy names.
func (r *Registry) Evolutions() []string {
	names := make([]string, 0, len(r.evolutions))
	for name := range r.evolutions {
		names = append(names, name)
	}
	return names
}
