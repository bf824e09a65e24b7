package engine_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stardust/engine"
	"github.com/san-kum/stardust/particle"
)

type tick struct {
	N int
}

func tickScene(size int) particle.Scene[tick] {
	scene := make(particle.Scene[tick], 0, size)
	for i := 0; i < size; i++ {
		scene.Add(particle.New(tick{},
			particle.EvolutionFunc[tick](func(d *tick) { d.N++ }),
			particle.RenderFunc[tick](func(d *tick) {})))
	}
	return scene
}

var _ = Describe("Automatic Engine", func() {
	var (
		eng    *engine.Automatic[tick]
		frames int
	)

	BeforeEach(func() {
		frames = 0
		eng = engine.NewAutomatic(tickScene(3),
			engine.SceneRenderFunc[tick](func(s particle.Scene[tick]) { frames++ }))
	})

	It("runs phases in order within each iteration", func() {
		var log []string
		err := eng.
			BeforeUpdate(func(e *engine.Automatic[tick]) { log = append(log, "before-update") }).
			BeforeDraw(func(e *engine.Automatic[tick]) { log = append(log, "before-draw") }).
			BeforeNext(func(e *engine.Automatic[tick]) { log = append(log, "before-next") }).
			RunWhile(context.Background(), func(e *engine.Automatic[tick]) bool { return false })

		Expect(err).ToNot(HaveOccurred())
		Expect(log).To(Equal([]string{"before-update", "before-draw", "before-next"}))
		Expect(frames).To(Equal(1))
	})

	It("always executes at least one iteration", func() {
		err := eng.RunWhile(context.Background(),
			func(e *engine.Automatic[tick]) bool { return false })

		Expect(err).ToNot(HaveOccurred())
		Expect(eng.Iterations()).To(Equal(1))
		Expect((*eng.Scene())[0].Data().N).To(Equal(1))
	})

	It("replaces hooks last-write-wins", func() {
		var hit string
		eng.BeforeNext(func(e *engine.Automatic[tick]) { hit = "first" })
		eng.BeforeNext(func(e *engine.Automatic[tick]) { hit = "second" })

		err := eng.RunWhile(context.Background(),
			func(e *engine.Automatic[tick]) bool { return false })

		Expect(err).ToNot(HaveOccurred())
		Expect(hit).To(Equal("second"))
	})

	It("stops after the current iteration when Stop is called from a hook", func() {
		err := eng.
			BeforeNext(func(e *engine.Automatic[tick]) {
				if e.Iterations() >= 2 {
					e.Stop()
				}
			}).
			Start(context.Background())

		Expect(err).ToNot(HaveOccurred())
		Expect(eng.Iterations()).To(Equal(3))
		Expect(frames).To(Equal(3), "every started iteration completes its draw phase")
	})

	It("treats Stop as idempotent and legal before a run", func() {
		eng.Stop()
		eng.Stop()

		err := eng.Start(context.Background())

		Expect(err).ToNot(HaveOccurred())
		Expect(eng.Iterations()).To(Equal(1), "post-condition loop still runs once")
	})

	It("re-arms after Stop when a new condition is set", func() {
		eng.Stop()
		err := eng.RunUntil(context.Background(),
			func(e *engine.Automatic[tick]) bool { return e.Iterations() >= 2 })

		Expect(err).ToNot(HaveOccurred())
		Expect(eng.Iterations()).To(Equal(2))
	})

	It("observes context cancellation at the predicate point", func() {
		ctx, cancel := context.WithCancel(context.Background())

		err := eng.
			BeforeNext(func(e *engine.Automatic[tick]) {
				if e.Iterations() >= 1 {
					cancel()
				}
			}).
			Start(ctx)

		Expect(err).To(MatchError(context.Canceled))
		Expect(eng.Iterations()).To(Equal(2))
	})

	Describe("run condition equivalences", func() {
		countdown := func() engine.Condition[tick] {
			return func(e *engine.Automatic[tick]) bool {
				return (*e.Scene())[0].Data().N < 4
			}
		}

		It("RunUntil(p) matches RunWhile(not p)", func() {
			whileEng := engine.NewAutomatic(tickScene(1),
				engine.SceneRenderFunc[tick](func(particle.Scene[tick]) {}))
			untilEng := engine.NewAutomatic(tickScene(1),
				engine.SceneRenderFunc[tick](func(particle.Scene[tick]) {}))

			Expect(whileEng.RunWhile(context.Background(), countdown())).To(Succeed())
			Expect(untilEng.RunUntil(context.Background(), func(e *engine.Automatic[tick]) bool {
				return !countdown()(e)
			})).To(Succeed())

			Expect(untilEng.Iterations()).To(Equal(whileEng.Iterations()))
			Expect((*untilEng.Scene())[0].Data().N).To(Equal((*whileEng.Scene())[0].Data().N))
		})
	})

	Describe("quantified run helpers", func() {
		It("RunUntilAny stops at the first iteration where any particle qualifies", func() {
			err := eng.RunUntilAny(context.Background(),
				func(p *particle.Particle[tick]) bool { return p.Data().N > 2 })

			Expect(err).ToNot(HaveOccurred())
			Expect(eng.Iterations()).To(Equal(3))
		})

		It("RunUntilAll waits for every particle", func() {
			// One particle advances twice as fast as the others.
			(*eng.Scene())[0].EvolutionPolicy().Policy =
				particle.EvolutionFunc[tick](func(d *tick) { d.N += 2 })

			err := eng.RunUntilAll(context.Background(),
				func(p *particle.Particle[tick]) bool { return p.Data().N >= 4 })

			Expect(err).ToNot(HaveOccurred())
			Expect(eng.Iterations()).To(Equal(4))
		})

		It("re-quantifies over the scene as hooks shrink it", func() {
			drain := engine.NewAutomatic(tickScene(5),
				engine.SceneRenderFunc[tick](func(particle.Scene[tick]) {}))

			err := drain.
				BeforeNext(func(e *engine.Automatic[tick]) {
					if e.Scene().Pop() == nil {
						e.Stop()
					}
				}).
				RunWhileAny(context.Background(),
					func(p *particle.Particle[tick]) bool { return true })

			Expect(err).ToNot(HaveOccurred())
			Expect(drain.Iterations()).To(Equal(5))
			Expect(drain.Scene().Len()).To(Equal(0))
		})
	})
})
