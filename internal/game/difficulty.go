package game

import (
	"time"

	"github.com/vovakirdan/paw-chaos/internal/config"
)

// Difficulty is the player-selected game difficulty, fixed for a session.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DifficultyCount is the number of selectable difficulties.
const DifficultyCount = 3

// StageCount is the number of stages in a full game.
const StageCount = 10

// String returns the menu label.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "EASY"
	case Medium:
		return "MEDIUM"
	case Hard:
		return "HARD"
	default:
		return "UNKNOWN"
	}
}

// Limit returns the time budget for a stage: base − stage·decay, clamped
// to the floor. Strictly decreasing in stage until the floor is reached;
// EASY has the largest base and smallest decay, HARD the opposite, so the
// difficulties converge toward a similarly tight late game.
func Limit(cfg config.StageConfig, d Difficulty, stage int) time.Duration {
	t := timing(cfg, d)
	limit := t.BaseSeconds - float64(stage)*t.DecaySeconds
	if limit < cfg.FloorSeconds {
		limit = cfg.FloorSeconds
	}
	return time.Duration(limit * float64(time.Second))
}

func timing(cfg config.StageConfig, d Difficulty) config.StageTiming {
	switch d {
	case Medium:
		return cfg.Medium
	case Hard:
		return cfg.Hard
	default:
		return cfg.Easy
	}
}

// points rewards a stage clear. Later stages and faster clears score more;
// any clear is worth at least the stage component, so the cumulative score
// strictly increases across stages.
func points(cfg config.ScoringConfig, stage int, remaining, limit time.Duration) int {
	p := stage * cfg.StagePoints
	if limit > 0 {
		frac := float64(remaining) / float64(limit)
		p += int(frac * float64(cfg.SpeedPoints))
	}
	return p
}
