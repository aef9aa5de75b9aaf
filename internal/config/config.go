// Package config provides YAML-based ruleset loading and difficulty presets
// for the tetris engine.
package config

// Built-in ruleset names.
const (
	RulesetStandard = "standard"
	RulesetClassic  = "classic"
)

// Rulesets returns the built-in ruleset names in display order.
func Rulesets() []string {
	return []string{RulesetStandard, RulesetClassic}
}

// RulesetConfig contains everything that varies between game variants.
type RulesetConfig struct {
	Name     string         `yaml:"name"`
	Summary  string         `yaml:"summary"`
	Board    BoardConfig    `yaml:"board"`
	Rotation RotationConfig `yaml:"rotation"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Speed    SpeedConfig    `yaml:"speed"`
	Controls ControlsConfig `yaml:"controls"`
}

// BoardConfig defines the well geometry. Width and height include the walls
// and the floor.
type BoardConfig struct {
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Spawn  *SpawnConfig `yaml:"spawn,omitempty"` // nil = top center
}

// SpawnConfig is the origin of every new piece's 4x4 box.
type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RotationConfig selects the wall kick policy.
type RotationConfig struct {
	Kicks string `yaml:"kicks"` // "horizontal" or "none"
}

// ScoringConfig defines how clears and manual drops are rewarded.
type ScoringConfig struct {
	Policy         string `yaml:"policy"` // "weighted" or "flat"
	SoftDropPoints int    `yaml:"soft_drop_points"`
	HardDropPoints int    `yaml:"hard_drop_points"`
}

// SpeedConfig defines the gravity interval and how it shrinks.
type SpeedConfig struct {
	InitialMs       int    `yaml:"initial_ms"`
	DecrementMs     int    `yaml:"decrement_ms"`
	FloorMs         int    `yaml:"floor_ms"`
	Ramp            string `yaml:"ramp"`             // "per_row" or "per_threshold"
	ThresholdPoints int    `yaml:"threshold_points"` // per_threshold only
}

// ControlsConfig holds key mapping choices that depend on the ruleset.
type ControlsConfig struct {
	UpRotates string `yaml:"up_rotates"` // "cw" or "ccw"
}

// UpRotatesCW reports whether the up key turns pieces clockwise.
func (c ControlsConfig) UpRotatesCW() bool {
	return c.UpRotates != "ccw"
}
