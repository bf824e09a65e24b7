package config

var Presets = map[string]*Config{
	"classic": {
		// A field of dots sliding right at constant speed.
		Evolution: "drift", Renderer: "canvas",
		Particles: 100, Steps: 60, Width: 80, Height: 24, FrameRate: 30,
		Params: map[string]float64{"dx": 5, "dy": 0},
	},
	"rain": {
		Evolution: "gravity", Renderer: "canvas",
		Particles: 200, Steps: 300, Width: 80, Height: 24, FrameRate: 30,
		Params: map[string]float64{"g": 0.05},
	},
	"swarm": {
		Evolution: "bounce", Renderer: "canvas",
		Particles: 150, Steps: 500, Width: 80, Height: 24, FrameRate: 30,
	},
	"sway": {
		Evolution: "wobble", Renderer: "trail",
		Particles: 40, Steps: 400, Width: 80, Height: 24, FrameRate: 30,
		Params: map[string]float64{"amplitude": 1.5, "step": 0.2},
	},
	"heartbeat": {
		Evolution: "pulse", Renderer: "canvas",
		Particles: 80, Steps: 600, Width: 80, Height: 24, FrameRate: 30,
		Params: map[string]float64{"period": 40},
	},
}

// GetPreset returns a copy of a named preset, or nil when unknown. The copy
// keeps preset definitions immune to flag overrides.
func GetPreset(name string) *Config {
	base, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *base
	cfg.Params = make(map[string]float64, len(base.Params))
	for k, v := range base.Params {
		cfg.Params[k] = v
	}
	return &cfg
}

// PresetNames returns the defined preset names in no particular order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
