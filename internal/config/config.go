// Package config provides YAML-based tuning configuration for the
// controller: debounce windows, gesture thresholds, stage timing and the
// tone table. Detection thresholds are tuning parameters, not structural
// behavior, so they all live here rather than as constants in the core.
package config

// Config is the full controller configuration.
type Config struct {
	Sampler SamplerConfig `yaml:"sampler"`
	Gesture GestureConfig `yaml:"gesture"`
	Stages  StageConfig   `yaml:"stages"`
	Scoring ScoringConfig `yaml:"scoring"`
	Flow    FlowConfig    `yaml:"flow"`
	Audio   AudioConfig   `yaml:"audio"`
}

// SamplerConfig tunes input debouncing.
type SamplerConfig struct {
	MinStepInterval   int `yaml:"min_step_interval"`   // ticks between accepted encoder steps
	ButtonStablePolls int `yaml:"button_stable_polls"` // polls a button level must hold
}

// GestureConfig tunes shake/flip recognition.
type GestureConfig struct {
	ShakeThreshold  float64 `yaml:"shake_threshold"`  // peak-to-peak m/s²
	ShakeWindow     int     `yaml:"shake_window"`     // samples
	ShakeRefractory int     `yaml:"shake_refractory"` // ticks
	FlipThreshold   float64 `yaml:"flip_threshold"`   // m/s² below zero on the up axis
	FlipDwell       int     `yaml:"flip_dwell"`       // ticks of sustained inversion
	BaselineAlpha   float64 `yaml:"baseline_alpha"`   // gravity EMA coefficient
}

// StageTiming is the time-limit curve for one difficulty.
type StageTiming struct {
	BaseSeconds  float64 `yaml:"base_seconds"`
	DecaySeconds float64 `yaml:"decay_seconds"`
}

// StageConfig defines the per-difficulty stage time limits:
// limit = base − stage·decay, clamped to the floor.
type StageConfig struct {
	FloorSeconds float64     `yaml:"floor_seconds"`
	Easy         StageTiming `yaml:"easy"`
	Medium       StageTiming `yaml:"medium"`
	Hard         StageTiming `yaml:"hard"`
}

// ScoringConfig defines how stage clears are rewarded.
type ScoringConfig struct {
	StagePoints int `yaml:"stage_points"` // per stage number
	SpeedPoints int `yaml:"speed_points"` // max bonus for an instant clear
}

// FlowConfig holds the hold durations of the transient screens, in ticks.
type FlowConfig struct {
	SplashTicks  int `yaml:"splash_ticks"`
	PromptTicks  int `yaml:"prompt_ticks"`  // "get ready" hold before the timer starts
	ClearedTicks int `yaml:"cleared_ticks"` // success feedback hold
}

// AudioConfig holds the buzzer tone table in Hz.
type AudioConfig struct {
	Paw       int `yaml:"paw"`
	TailLeft  int `yaml:"tail_left"`
	TailRight int `yaml:"tail_right"`
	Shake     int `yaml:"shake"`
	Flip      int `yaml:"flip"`
	Confirm   int `yaml:"confirm"`
	Fail      int `yaml:"fail"`
	Win       int `yaml:"win"`
}
