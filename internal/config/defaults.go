package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/standard.yaml
var defaultStandardYAML []byte

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

// DefaultYAML returns the embedded YAML document for a built-in ruleset.
func DefaultYAML(ruleset string) ([]byte, error) {
	switch ruleset {
	case RulesetStandard, "":
		return defaultStandardYAML, nil
	case RulesetClassic:
		return defaultClassicYAML, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleset, ruleset)
	}
}

// Default returns the hardcoded configuration of a built-in ruleset. It is
// the fallback when the embedded YAML cannot be parsed.
func Default(ruleset string) (RulesetConfig, error) {
	switch ruleset {
	case RulesetStandard, "":
		return DefaultStandardConfig(), nil
	case RulesetClassic:
		return DefaultClassicConfig(), nil
	default:
		return RulesetConfig{}, fmt.Errorf("%w: %q", ErrUnknownRuleset, ruleset)
	}
}

// DefaultStandardConfig returns the default ruleset: wall kicks, weighted
// scoring and a ramp on every cleared row.
func DefaultStandardConfig() RulesetConfig {
	return RulesetConfig{
		Name:    RulesetStandard,
		Summary: "Wall kicks, 100/300/500/800 scoring, faster with every cleared row",
		Board: BoardConfig{
			Width:  12,
			Height: 22,
		},
		Rotation: RotationConfig{Kicks: "horizontal"},
		Scoring: ScoringConfig{
			Policy:         "weighted",
			SoftDropPoints: 1,
			HardDropPoints: 2,
		},
		Speed: SpeedConfig{
			InitialMs:   1000,
			DecrementMs: 50,
			FloorMs:     100,
			Ramp:        "per_row",
		},
		Controls: ControlsConfig{UpRotates: "cw"},
	}
}

// DefaultClassicConfig returns the plain ruleset: no kicks, 100 points per
// row and a ramp every 1000 points.
func DefaultClassicConfig() RulesetConfig {
	return RulesetConfig{
		Name:    RulesetClassic,
		Summary: "No wall kicks, 100 points per row, faster every 1000 points",
		Board: BoardConfig{
			Width:  12,
			Height: 23,
			Spawn:  &SpawnConfig{X: 4, Y: 0},
		},
		Rotation: RotationConfig{Kicks: "none"},
		Scoring: ScoringConfig{
			Policy:         "flat",
			SoftDropPoints: 1,
			HardDropPoints: 0,
		},
		Speed: SpeedConfig{
			InitialMs:       1000,
			DecrementMs:     50,
			FloorMs:         200,
			Ramp:            "per_threshold",
			ThresholdPoints: 1000,
		},
		Controls: ControlsConfig{UpRotates: "ccw"},
	}
}
