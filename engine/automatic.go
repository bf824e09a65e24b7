package engine

import (
	"context"

	"github.com/san-kum/stardust/particle"
)

// Hook is a caller-supplied action run at a fixed phase of every loop
// iteration. Hooks receive the engine and may mutate its scene, replace its
// predicate, or call Stop.
type Hook[D any] func(e *Automatic[D])

// Condition is the run predicate: the loop continues while it returns true.
type Condition[D any] func(e *Automatic[D]) bool

// Property is a per-particle predicate quantified over the scene by the
// RunWhileAll/RunUntilAny family.
type Property[D any] func(p *particle.Particle[D]) bool

// Automatic wraps a [Manual] engine in a controllable run loop. Hooks and
// the run condition are set builder-style; each setter replaces the previous
// value and returns the engine for chaining.
type Automatic[D any] struct {
	engine *Manual[D]

	runCondition Condition[D]
	beforeUpdate Hook[D]
	beforeDraw   Hook[D]
	beforeNext   Hook[D]

	iterations int
}

// NewAutomatic builds an automatic engine over a fresh manual engine. The
// default hooks do nothing and the default run condition is always true: an
// unbounded loop until Stop or context cancellation.
func NewAutomatic[D any](scene particle.Scene[D], renderer SceneRenderer[D]) *Automatic[D] {
	return &Automatic[D]{
		engine:       NewManual(scene, renderer),
		runCondition: func(*Automatic[D]) bool { return true },
		beforeUpdate: func(*Automatic[D]) {},
		beforeDraw:   func(*Automatic[D]) {},
		beforeNext:   func(*Automatic[D]) {},
	}
}

// BeforeUpdate sets the action run before each step. Last write wins.
func (a *Automatic[D]) BeforeUpdate(action Hook[D]) *Automatic[D] {
	a.beforeUpdate = action
	return a
}

// BeforeDraw sets the action run between step and draw. Last write wins.
func (a *Automatic[D]) BeforeDraw(action Hook[D]) *Automatic[D] {
	a.beforeDraw = action
	return a
}

// BeforeNext sets the action run after draw, before the predicate check.
// Last write wins.
func (a *Automatic[D]) BeforeNext(action Hook[D]) *Automatic[D] {
	a.beforeNext = action
	return a
}

// RunCondition replaces the run predicate.
func (a *Automatic[D]) RunCondition(condition Condition[D]) *Automatic[D] {
	a.runCondition = condition
	return a
}

// Start executes the loop until the run predicate is false or ctx is
// canceled. Each iteration runs before-update, Step, before-draw, Draw,
// before-next, then checks cancellation and the predicate; at least one full
// iteration always executes. Returns ctx.Err on cancellation, nil when the
// predicate ends the run.
func (a *Automatic[D]) Start(ctx context.Context) error {
	for {
		a.beforeUpdate(a)
		a.engine.Step()
		a.beforeDraw(a)
		a.engine.Draw()
		a.beforeNext(a)
		a.iterations++

		if err := ctx.Err(); err != nil {
			return err
		}
		if !a.runCondition(a) {
			return nil
		}
	}
}

// Stop replaces the run predicate with always-false. The loop terminates at
// the next predicate check; the iteration in progress completes first. Legal
// at any time, including outside a run, and idempotent. A later RunCondition
// or RunWhile re-arms the engine.
func (a *Automatic[D]) Stop() {
	a.runCondition = func(*Automatic[D]) bool { return false }
}

// RunWhile sets the run predicate and starts the loop.
func (a *Automatic[D]) RunWhile(ctx context.Context, condition Condition[D]) error {
	return a.RunCondition(condition).Start(ctx)
}

// RunUntil runs while the condition is false.
func (a *Automatic[D]) RunUntil(ctx context.Context, condition Condition[D]) error {
	return a.RunWhile(ctx, func(e *Automatic[D]) bool { return !condition(e) })
}

// RunWhileAll runs while every particle in the current scene satisfies the
// property. The scene is re-quantified at every check, since hooks may grow
// or shrink it; an empty scene satisfies the universal quantifier.
func (a *Automatic[D]) RunWhileAll(ctx context.Context, property Property[D]) error {
	return a.RunWhile(ctx, func(e *Automatic[D]) bool { return allOf(*e.Scene(), property) })
}

// RunWhileAny runs while at least one particle satisfies the property.
func (a *Automatic[D]) RunWhileAny(ctx context.Context, property Property[D]) error {
	return a.RunWhile(ctx, func(e *Automatic[D]) bool { return anyOf(*e.Scene(), property) })
}

// RunUntilAll runs until every particle satisfies the property.
func (a *Automatic[D]) RunUntilAll(ctx context.Context, property Property[D]) error {
	return a.RunUntil(ctx, func(e *Automatic[D]) bool { return allOf(*e.Scene(), property) })
}

// RunUntilAny runs until at least one particle satisfies the property.
func (a *Automatic[D]) RunUntilAny(ctx context.Context, property Property[D]) error {
	return a.RunUntil(ctx, func(e *Automatic[D]) bool { return anyOf(*e.Scene(), property) })
}

// Scene exposes the underlying engine's scene for mutation between steps.
func (a *Automatic[D]) Scene() *particle.Scene[D] { return a.engine.Scene() }

// Manual exposes the wrapped single-step engine.
func (a *Automatic[D]) Manual() *Manual[D] { return a.engine }

// Iterations returns the number of completed loop iterations.
func (a *Automatic[D]) Iterations() int { return a.iterations }

func allOf[D any](s particle.Scene[D], property Property[D]) bool {
	for _, p := range s {
		if !property(p) {
			return false
		}
	}
	return true
}

func anyOf[D any](s particle.Scene[D], property Property[D]) bool {
	for _, p := range s {
		if property(p) {
			return true
		}
	}
	return false
}
