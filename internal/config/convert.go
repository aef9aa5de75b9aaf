package config

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Validate reports YAML-level problems such as unknown policy names. Errors
// wrap tetris.ErrInvalidConfig. Geometry is checked by the engine itself.
func (c RulesetConfig) Validate() error {
	if _, err := c.rules(); err != nil {
		return err
	}
	switch c.Controls.UpRotates {
	case "", "cw", "ccw":
	default:
		return fmt.Errorf("%w: controls.up_rotates must be cw or ccw, got %q", tetris.ErrInvalidConfig, c.Controls.UpRotates)
	}
	_, err := c.ToEngine(0)
	return err
}

// ToEngine converts the ruleset into an engine configuration with the given
// seed. The result is validated.
func (c RulesetConfig) ToEngine(seed int64) (tetris.Config, error) {
	rules, err := c.rules()
	if err != nil {
		return tetris.Config{}, err
	}
	cfg := tetris.Config{
		Width:  c.Board.Width,
		Height: c.Board.Height,
		Spawn:  tetris.DefaultSpawn(c.Board.Width),
		Rules:  rules,
		Seed:   seed,
	}
	if c.Board.Spawn != nil {
		cfg.Spawn = core.Pt(c.Board.Spawn.X, c.Board.Spawn.Y)
	}
	if err := cfg.Validate(); err != nil {
		return tetris.Config{}, err
	}
	return cfg, nil
}

func (c RulesetConfig) rules() (tetris.Rules, error) {
	var r tetris.Rules

	switch c.Rotation.Kicks {
	case "horizontal":
		r.Kicks = tetris.KickHorizontal
	case "none":
		r.Kicks = tetris.KickNone
	default:
		return r, fmt.Errorf("%w: rotation.kicks must be horizontal or none, got %q", tetris.ErrInvalidConfig, c.Rotation.Kicks)
	}

	switch c.Scoring.Policy {
	case "weighted":
		r.Scoring.Policy = tetris.ScoreWeighted
	case "flat":
		r.Scoring.Policy = tetris.ScoreFlat
	default:
		return r, fmt.Errorf("%w: scoring.policy must be weighted or flat, got %q", tetris.ErrInvalidConfig, c.Scoring.Policy)
	}
	r.Scoring.SoftDropPoints = c.Scoring.SoftDropPoints
	r.Scoring.HardDropPoints = c.Scoring.HardDropPoints

	switch c.Speed.Ramp {
	case "per_row":
		r.Speed.Mode = tetris.RampPerRow
	case "per_threshold":
		r.Speed.Mode = tetris.RampPerThreshold
	default:
		return r, fmt.Errorf("%w: speed.ramp must be per_row or per_threshold, got %q", tetris.ErrInvalidConfig, c.Speed.Ramp)
	}
	r.Speed.InitialMillis = c.Speed.InitialMs
	r.Speed.DecrementMillis = c.Speed.DecrementMs
	r.Speed.FloorMillis = c.Speed.FloorMs
	r.Speed.ThresholdPoints = c.Speed.ThresholdPoints

	return r, r.Validate()
}
