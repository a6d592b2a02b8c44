// Package config loads the renderer settings from an optional settings.json,
// falling back to defaults that reproduce the canonical spinning-donut look.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ConfigError reports an invalid configuration value. Configuration is
// validated once at startup; the animation never starts on a bad config.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

type Settings struct {
	Torus     TorusSettings     `json:"torus"`
	View      ViewSettings      `json:"view"`
	Animation AnimationSettings `json:"animation"`
}

type TorusSettings struct {
	MajorRadius  float64 `json:"majorRadius"`
	MinorRadius  float64 `json:"minorRadius"`
	ThetaSamples int     `json:"thetaSamples"`
	PhiSamples   int     `json:"phiSamples"`
}

type ViewSettings struct {
	GridWidth  int        `json:"gridWidth"`
	GridHeight int        `json:"gridHeight"`
	ObserverZ  float64    `json:"observerZ"`
	ScreenZ    float64    `json:"screenZ"`
	LightDir   [3]float64 `json:"lightDir"`
	Ramp       string     `json:"ramp"`
}

type AnimationSettings struct {
	AngleIncX       float64 `json:"angleIncX"`
	AngleIncY       float64 `json:"angleIncY"`
	InitialTiltX    float64 `json:"initialTiltX"`
	FrameIntervalMs int     `json:"frameIntervalMs"`
}

// Default returns the canonical configuration: a 2:1 torus sampled 100x150,
// observer five units behind the screen plane on the -z axis, light from
// above and behind the observer.
func Default() Settings {
	return Settings{
		Torus: TorusSettings{
			MajorRadius:  2,
			MinorRadius:  1,
			ThetaSamples: 100,
			PhiSamples:   150,
		},
		View: ViewSettings{
			GridWidth:  40,
			GridHeight: 40,
			ObserverZ:  -5,
			ScreenZ:    -4,
			LightDir:   [3]float64{0, 1, -1},
			Ramp:       ".,-~:;=!*#$@",
		},
		Animation: AnimationSettings{
			AngleIncX:       0.04,
			AngleIncY:       0.02,
			InitialTiltX:    0,
			FrameIntervalMs: 50,
		},
	}
}

// Load reads settings from path, starting from defaults. A missing file is
// not an error; a malformed or invalid one is.
func Load(path string) (Settings, error) {
	s := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, s.Validate()
		}
		return s, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, s.Validate()
}

// Validate checks every invariant the render pipeline depends on.
func (s Settings) Validate() error {
	t, v, a := s.Torus, s.View, s.Animation
	switch {
	case t.MinorRadius <= 0:
		return &ConfigError{"torus.minorRadius", "must be positive"}
	case t.MajorRadius <= t.MinorRadius:
		return &ConfigError{"torus.majorRadius", "must exceed the minor radius"}
	case t.ThetaSamples <= 0:
		return &ConfigError{"torus.thetaSamples", "must be positive"}
	case t.PhiSamples <= 0:
		return &ConfigError{"torus.phiSamples", "must be positive"}
	case v.GridWidth <= 0:
		return &ConfigError{"view.gridWidth", "must be positive"}
	case v.GridHeight <= 0:
		return &ConfigError{"view.gridHeight", "must be positive"}
	case !(v.ObserverZ < v.ScreenZ):
		return &ConfigError{"view.observerZ", "observer must sit behind the screen plane"}
	case !(v.ScreenZ < -(t.MajorRadius + t.MinorRadius)):
		return &ConfigError{"view.screenZ", "screen plane must sit outside the torus"}
	case v.LightDir == [3]float64{}:
		return &ConfigError{"view.lightDir", "must be a nonzero vector"}
	case len(v.Ramp) == 0:
		return &ConfigError{"view.ramp", "must not be empty"}
	case a.FrameIntervalMs <= 0:
		return &ConfigError{"animation.frameIntervalMs", "must be positive"}
	}
	return nil
}
