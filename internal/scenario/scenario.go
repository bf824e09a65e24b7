package scenario

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/stardust/engine"
	"github.com/san-kum/stardust/internal/config"
	"github.com/san-kum/stardust/internal/metrics"
	"github.com/san-kum/stardust/internal/motion"
	"github.com/san-kum/stardust/internal/store"
	"github.com/san-kum/stardust/particle"
)

// Scenario is a scripted sequence of demo runs.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one run in a scenario. Zero fields inherit the defaults.
type Step struct {
	Evolution string             `yaml:"evolution"`
	Renderer  string             `yaml:"renderer"`
	Particles int                `yaml:"particles"`
	Steps     int                `yaml:"steps"`
	Seed      int64              `yaml:"seed"`
	Params    map[string]float64 `yaml:"params"`
	SaveAs    string             `yaml:"save_as"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", s.Name)
	}
	return &s, nil
}

// Result summarizes one executed run.
type Result struct {
	RunID      string
	Iterations int
	Metrics    map[string]float64
	Series     map[string][]float64
}

// RunConfig executes a single configured run: it builds the engine, attaches
// metric collection and shared-policy frame advancement, and loops for
// cfg.Steps iterations. Frames go to out (nil for headless); a nil store
// skips persistence.
func RunConfig(ctx context.Context, cfg *config.Config, reg *Registry, st *store.Store, out io.Writer) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	build, err := reg.Build(cfg, rng)
	if err != nil {
		return nil, err
	}
	if out != nil {
		build.Canvas.Out = out
	} else {
		build.Canvas.Out = io.Discard
	}

	collector := metrics.NewCollector(&metrics.Population{}, &metrics.MeanAge{}, &metrics.Spread{})
	observe := collector.Hook()

	steps := cfg.Steps
	err = build.Engine.
		BeforeNext(func(e *engine.Automatic[motion.Dot]) {
			for _, g := range build.Globals {
				g.Notify(particle.Global)
			}
			observe(e)
		}).
		RunUntil(ctx, func(e *engine.Automatic[motion.Dot]) bool {
			return e.Iterations() >= steps
		})
	if err != nil {
		return nil, err
	}

	res := &Result{
		Iterations: build.Engine.Iterations(),
		Metrics:    collector.Final(),
		Series:     collector.Series(),
	}

	if st != nil {
		runID, err := st.Save(store.RunMetadata{
			Evolution:  cfg.Evolution,
			Renderer:   cfg.Renderer,
			Particles:  cfg.Particles,
			Seed:       cfg.Seed,
			Iterations: res.Iterations,
			Metrics:    res.Metrics,
		}, res.Series)
		if err != nil {
			return nil, err
		}
		res.RunID = runID
	}
	return res, nil
}

// Run executes all steps of a scenario in order.
func Run(ctx context.Context, s *Scenario, reg *Registry, st *store.Store) ([]Result, error) {
	results := make([]Result, 0, len(s.Steps))

	for i, step := range s.Steps {
		cfg := config.DefaultConfig()
		if step.Evolution != "" {
			cfg.Evolution = step.Evolution
		}
		if step.Renderer != "" {
			cfg.Renderer = step.Renderer
		}
		if step.Particles > 0 {
			cfg.Particles = step.Particles
		}
		if step.Steps > 0 {
			cfg.Steps = step.Steps
		}
		cfg.Seed = step.Seed
		cfg.FrameRate = 0 // headless: no frame-rate gating
		for k, v := range step.Params {
			cfg.Params[k] = v
		}

		target := st
		if step.SaveAs == "" {
			target = nil
		}

		res, err := RunConfig(ctx, cfg, reg, target, nil)
		if err != nil {
			return results, fmt.Errorf("scenario step %d/%d: %w", i+1, len(s.Steps), err)
		}
		results = append(results, *res)
	}
	return results, nil
}
