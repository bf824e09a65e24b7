// Package engine drives scenes of particles.
//
// Two drivers are provided:
//
//   - [Manual]: no loop. Step advances every particle once and fires the
//     once-per-frame [particle.Global] notification; Draw renders the scene.
//     The caller owns the cadence, which is what an external event loop (a
//     TUI tick, a vsync callback) wants.
//   - [Automatic]: wraps a Manual engine in a controllable run loop with
//     per-phase hooks and a run predicate.
//
// The automatic loop is a post-condition loop: each iteration runs
// before-update, Step, before-draw, Draw, before-next, and only then checks
// the predicate, so at least one iteration always executes. [Automatic.Stop]
// replaces the predicate with always-false; the current iteration finishes
// first.
//
//	eng := engine.NewAutomatic(scene, renderer)
//	err := eng.
//		BeforeDraw(func(e *engine.Automatic[Dot]) { frames++ }).
//		BeforeNext(cull).
//		RunUntilAny(ctx, func(p *particle.Particle[Dot]) bool {
//			return p.Data().X > 300
//		})
package engine
