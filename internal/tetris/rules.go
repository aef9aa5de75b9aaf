package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KickPolicy decides which horizontal offsets a rotation may try.
type KickPolicy int

const (
	// KickHorizontal tries (0,0), then (-1,0), then (+1,0).
	KickHorizontal KickPolicy = iota
	// KickNone only tries the unshifted placement.
	KickNone
)

var (
	horizontalKicks = []core.Point{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	noKicks         = []core.Point{{X: 0, Y: 0}}
)

// Offsets returns the kick candidates in the order they are tried.
func (k KickPolicy) Offsets() []core.Point {
	if k == KickNone {
		return noKicks
	}
	return horizontalKicks
}

// String returns the config name of the policy.
func (k KickPolicy) String() string {
	switch k {
	case KickHorizontal:
		return "horizontal"
	case KickNone:
		return "none"
	default:
		return "unknown"
	}
}

// ScorePolicy decides how cleared rows turn into points.
type ScorePolicy int

const (
	// ScoreWeighted awards 100/300/500/800 for 1/2/3/4 rows in one lock.
	ScoreWeighted ScorePolicy = iota
	// ScoreFlat awards 100 per row.
	ScoreFlat
)

var weightedAwards = [...]int{0, 100, 300, 500, 800}

// String returns the config name of the policy.
func (s ScorePolicy) String() string {
	switch s {
	case ScoreWeighted:
		return "weighted"
	case ScoreFlat:
		return "flat"
	default:
		return "unknown"
	}
}

// Scoring bundles the line-clear policy with the manual drop bonuses.
type Scoring struct {
	Policy         ScorePolicy
	SoftDropPoints int // per row moved by a player soft drop
	HardDropPoints int // per row travelled by a hard drop
}

// Award returns the points for clearing rows in a single lock.
func (s Scoring) Award(rows int) int {
	if rows <= 0 {
		return 0
	}
	if s.Policy == ScoreFlat {
		return 100 * rows
	}
	// A single piece spans at most four rows.
	return weightedAwards[min(rows, len(weightedAwards)-1)]
}

// RampMode decides what shortens the tick interval.
type RampMode int

const (
	// RampPerRow shortens the interval once per cleared row.
	RampPerRow RampMode = iota
	// RampPerThreshold shortens it once per ThresholdPoints of score crossed.
	RampPerThreshold
)

// String returns the config name of the mode.
func (m RampMode) String() string {
	switch m {
	case RampPerRow:
		return "per_row"
	case RampPerThreshold:
		return "per_threshold"
	default:
		return "unknown"
	}
}

// SpeedRamp describes how gravity accelerates. The interval starts at
// InitialMillis, only ever shrinks, and stops at FloorMillis.
type SpeedRamp struct {
	InitialMillis   int
	DecrementMillis int
	FloorMillis     int
	Mode            RampMode
	ThresholdPoints int
}

// Next returns the interval after a lock that cleared rows and moved the
// score from before to after.
func (r SpeedRamp) Next(intervalMillis, rows, before, after int) int {
	steps := rows
	if r.Mode == RampPerThreshold {
		steps = after/r.ThresholdPoints - before/r.ThresholdPoints
	}
	if steps <= 0 {
		return intervalMillis
	}
	return max(intervalMillis-steps*r.DecrementMillis, r.FloorMillis)
}

// Rules is the set of behaviors that differ between game variants.
type Rules struct {
	Kicks   KickPolicy
	Scoring Scoring
	Speed   SpeedRamp
}

// StandardRules is the default ruleset: horizontal kicks, weighted scoring,
// a per-row ramp from one second down to 100ms.
func StandardRules() Rules {
	return Rules{
		Kicks: KickHorizontal,
		Scoring: Scoring{
			Policy:         ScoreWeighted,
			SoftDropPoints: 1,
			HardDropPoints: 2,
		},
		Speed: SpeedRamp{
			InitialMillis:   1000,
			DecrementMillis: 50,
			FloorMillis:     100,
			Mode:            RampPerRow,
		},
	}
}

// ClassicRules mirrors the simplest variant: no kicks, flat scoring and a
// ramp every 1000 points down to 200ms.
func ClassicRules() Rules {
	return Rules{
		Kicks: KickNone,
		Scoring: Scoring{
			Policy:         ScoreFlat,
			SoftDropPoints: 1,
			HardDropPoints: 0,
		},
		Speed: SpeedRamp{
			InitialMillis:   1000,
			DecrementMillis: 50,
			FloorMillis:     200,
			Mode:            RampPerThreshold,
			ThresholdPoints: 1000,
		},
	}
}

// Validate checks that the rules describe a playable, monotonic game.
func (r Rules) Validate() error {
	switch r.Kicks {
	case KickHorizontal, KickNone:
	default:
		return fmt.Errorf("%w: unknown kick policy %d", ErrInvalidConfig, r.Kicks)
	}
	switch r.Scoring.Policy {
	case ScoreWeighted, ScoreFlat:
	default:
		return fmt.Errorf("%w: unknown score policy %d", ErrInvalidConfig, r.Scoring.Policy)
	}
	if r.Scoring.SoftDropPoints < 0 || r.Scoring.HardDropPoints < 0 {
		return fmt.Errorf("%w: drop points must not be negative", ErrInvalidConfig)
	}

	s := r.Speed
	if s.FloorMillis <= 0 {
		return fmt.Errorf("%w: speed floor must be positive, got %dms", ErrInvalidConfig, s.FloorMillis)
	}
	if s.InitialMillis < s.FloorMillis {
		return fmt.Errorf("%w: initial interval %dms is below the floor %dms", ErrInvalidConfig, s.InitialMillis, s.FloorMillis)
	}
	if s.DecrementMillis < 0 {
		return fmt.Errorf("%w: speed decrement must not be negative", ErrInvalidConfig)
	}
	switch s.Mode {
	case RampPerRow:
	case RampPerThreshold:
		if s.ThresholdPoints <= 0 {
			return fmt.Errorf("%w: per_threshold ramp needs positive threshold points", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown ramp mode %d", ErrInvalidConfig, s.Mode)
	}
	return nil
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
