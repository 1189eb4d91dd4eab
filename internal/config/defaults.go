package config

import (
	_ "embed"
)

//go:embed defaults/controller.yaml
var defaultControllerYAML []byte

// Default returns the hardcoded default configuration. Used as the final
// fallback when even the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Sampler: SamplerConfig{
			MinStepInterval:   2,
			ButtonStablePolls: 3,
		},
		Gesture: GestureConfig{
			ShakeThreshold:  24.0,
			ShakeWindow:     8,
			ShakeRefractory: 30,
			FlipThreshold:   5.0,
			FlipDwell:       15,
			BaselineAlpha:   0.05,
		},
		Stages: StageConfig{
			FloorSeconds: 0.35,
			Easy:         StageTiming{BaseSeconds: 2.0, DecaySeconds: 0.15},
			Medium:       StageTiming{BaseSeconds: 1.5, DecaySeconds: 0.11},
			Hard:         StageTiming{BaseSeconds: 1.0, DecaySeconds: 0.065},
		},
		Scoring: ScoringConfig{
			StagePoints: 10,
			SpeedPoints: 50,
		},
		Flow: FlowConfig{
			SplashTicks:  180,
			PromptTicks:  45,
			ClearedTicks: 45,
		},
		Audio: AudioConfig{
			Paw:       900,
			TailLeft:  800,
			TailRight: 850,
			Shake:     650,
			Flip:      500,
			Confirm:   800,
			Fail:      300,
			Win:       1100,
		},
	}
}
