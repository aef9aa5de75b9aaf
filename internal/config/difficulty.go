package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty maps a flag value to a preset. An empty string means the
// ruleset is used as configured.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the speed settings based on a difficulty preset.
//
//	easy   - slower start, ramp at half rate
//	normal - ruleset as configured
//	hard   - start at 60% of the configured interval
//	fixed  - no ramp, gravity stays at the initial interval
func ApplyPreset(cfg *RulesetConfig, preset DifficultyPreset) {
	s := &cfg.Speed
	switch preset {
	case DifficultyEasy:
		s.InitialMs = s.InitialMs * 5 / 4
		s.DecrementMs /= 2
	case DifficultyHard:
		s.InitialMs = max(s.InitialMs*3/5, s.FloorMs)
	case DifficultyFixed:
		s.DecrementMs = 0
	}
}

// IntervalAfter returns the gravity interval in milliseconds once rows rows
// have been cleared one at a time, each worth pointsPerRow. It lets the CLI
// describe how quickly a ruleset speeds up.
func (s SpeedConfig) IntervalAfter(rows, pointsPerRow int) int {
	interval := s.InitialMs
	for i := 0; i < rows; i++ {
		steps := 1
		if s.Ramp == "per_threshold" {
			if s.ThresholdPoints <= 0 {
				return interval
			}
			steps = (i+1)*pointsPerRow/s.ThresholdPoints - i*pointsPerRow/s.ThresholdPoints
		}
		interval = max(interval-steps*s.DecrementMs, s.FloorMs)
	}
	return interval
}
