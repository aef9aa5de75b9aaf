// Package tetris implements the falling-block simulation: board, shape table,
// bag randomizer, movement, rotation with kicks, locking, row clears, scoring
// and the gravity speed ramp.
//
// The engine is single-threaded and never drives its own clock. A driver
// calls Tick on a cadence equal to TickInterval and forwards player commands;
// both must be serialized onto one goroutine.
package tetris

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrInvalidConfig is wrapped by every configuration error New returns.
var ErrInvalidConfig = errors.New("invalid game config")

// Status is the lifecycle of a game. It moves from Running to Over once.
type Status int

const (
	StatusRunning Status = iota
	StatusOver
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Config describes the board geometry, ruleset and RNG seed of a game.
type Config struct {
	Width  int        // Columns including both walls
	Height int        // Rows including the floor
	Spawn  core.Point // Origin of every new piece
	Rules  Rules
	Seed   int64
}

// DefaultConfig returns a 10x21 interior well with the standard rules.
func DefaultConfig() Config {
	return Config{
		Width:  12,
		Height: 22,
		Spawn:  DefaultSpawn(12),
		Rules:  StandardRules(),
	}
}

// DefaultSpawn returns the top-center spawn point for a board width.
func DefaultSpawn(width int) core.Point {
	return core.Pt(width/2-2, 0)
}

// Validate checks the geometry and rules. Every kind must fit at the spawn
// point of an empty board.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 2 {
		return fmt.Errorf("%w: board %dx%d has no interior", ErrInvalidConfig, c.Width, c.Height)
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	board := NewBoard(c.Width, c.Height)
	for _, k := range Kinds {
		p := Piece{Kind: k, Origin: c.Spawn}
		for _, cell := range p.Cells() {
			if board.Blocked(cell.X, cell.Y) {
				return fmt.Errorf("%w: %v piece does not fit at spawn (%d,%d) on a %dx%d board",
					ErrInvalidConfig, k, c.Spawn.X, c.Spawn.Y, c.Width, c.Height)
			}
		}
	}
	return nil
}

// DropResult reports what a downward step did, so a driver can react to
// locks (and re-read TickInterval) without diffing state.
type DropResult struct {
	Moved       bool // The piece moved down at least one row
	Locked      bool // The piece merged into the board
	RowsCleared int  // Rows removed by that lock
	Points      int  // Score awarded by this call
	GameOver    bool // The following spawn ended the game
}

// Engine owns the whole simulation state.
type Engine struct {
	cfg   Config
	rules Rules
	board *Board
	bag   *Bag
	piece Piece

	score          int
	lines          int
	intervalMillis int
	rampScore      int // score at the last speed evaluation
	status         Status
	paused         bool

	ticks uint64
	locks uint64
}

// New validates cfg and starts a game with the first piece spawned.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tetris: %w", err)
	}

	e := &Engine{
		cfg:            cfg,
		rules:          cfg.Rules,
		board:          NewBoard(cfg.Width, cfg.Height),
		bag:            NewBag(rand.New(rand.NewSource(cfg.Seed))),
		intervalMillis: cfg.Rules.Speed.InitialMillis,
		status:         StatusRunning,
	}
	e.spawn()
	return e, nil
}

// active reports whether commands may mutate state.
func (e *Engine) active() bool {
	return e.status == StatusRunning && !e.paused
}

// Collides reports whether the active piece, shifted by (dx, dy) and turned
// to rotation, would leave the grid or overlap an occupied cell.
func (e *Engine) Collides(dx, dy, rotation int) bool {
	shift := core.Pt(e.piece.Origin.X+dx, e.piece.Origin.Y+dy)
	for _, off := range ShapeOf(e.piece.Kind, rotation) {
		cell := shift.Add(off)
		if e.board.Blocked(cell.X, cell.Y) {
			return true
		}
	}
	return false
}

// MoveHorizontal shifts the piece one column in the sign of dir if the
// target is free. It returns the resulting origin.
func (e *Engine) MoveHorizontal(dir int) core.Point {
	if !e.active() || dir == 0 {
		return e.piece.Origin
	}
	dx := 1
	if dir < 0 {
		dx = -1
	}
	if !e.Collides(dx, 0, e.piece.Rotation) {
		e.piece.Origin.X += dx
	}
	return e.piece.Origin
}

// MoveLeft shifts the piece one column left if possible.
func (e *Engine) MoveLeft() core.Point {
	return e.MoveHorizontal(-1)
}

// MoveRight shifts the piece one column right if possible.
func (e *Engine) MoveRight() core.Point {
	return e.MoveHorizontal(1)
}

// Rotate turns the piece one state clockwise (dir > 0) or counter-clockwise
// (dir < 0), trying the ruleset's kick offsets in order. It reports whether
// the rotation was committed.
func (e *Engine) Rotate(dir int) bool {
	if !e.active() || dir == 0 {
		return false
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	n := RotationCount(e.piece.Kind)
	next := (e.piece.Rotation + step + n) % n

	for _, kick := range e.rules.Kicks.Offsets() {
		if !e.Collides(kick.X, kick.Y, next) {
			e.piece.Rotation = next
			e.piece.Origin = e.piece.Origin.Add(kick)
			return true
		}
	}
	return false
}

// RotateCW turns the piece clockwise.
func (e *Engine) RotateCW() bool {
	return e.Rotate(1)
}

// RotateCCW turns the piece counter-clockwise.
func (e *Engine) RotateCCW() bool {
	return e.Rotate(-1)
}

// SoftDrop is the player's one-row drop. It earns the soft drop bonus when
// the piece moves and locks the piece when it cannot.
func (e *Engine) SoftDrop() DropResult {
	if !e.active() {
		return DropResult{}
	}
	return e.step(e.rules.Scoring.SoftDropPoints)
}

// Tick is one gravity step: a soft drop without the bonus.
func (e *Engine) Tick() DropResult {
	if !e.active() {
		return DropResult{}
	}
	e.ticks++
	return e.step(0)
}

// HardDrop drops the piece as far as it goes and locks it.
func (e *Engine) HardDrop() DropResult {
	if !e.active() {
		return DropResult{}
	}
	rows := e.dropDistance()
	e.piece.Origin.Y += rows

	pts := rows * e.rules.Scoring.HardDropPoints
	e.score += pts

	res := e.lock()
	res.Moved = rows > 0
	res.Points += pts
	return res
}

// TogglePause suspends or resumes the game. It has no effect once over.
func (e *Engine) TogglePause() bool {
	if e.status == StatusRunning {
		e.paused = !e.paused
	}
	return e.paused
}

func (e *Engine) step(bonus int) DropResult {
	if !e.Collides(0, 1, e.piece.Rotation) {
		e.piece.Origin.Y++
		e.score += bonus
		return DropResult{Moved: true, Points: bonus}
	}
	return e.lock()
}

// dropDistance is how many rows the piece can fall before it would collide.
func (e *Engine) dropDistance() int {
	n := 0
	for !e.Collides(0, n+1, e.piece.Rotation) {
		n++
	}
	return n
}

// lock merges the piece into the board, clears rows, applies score and speed,
// then spawns the next piece.
func (e *Engine) lock() DropResult {
	color := e.piece.Kind.Color()
	for _, c := range e.piece.Cells() {
		e.board.Set(c.X, c.Y, Occupied(color))
	}
	e.locks++

	rows := e.board.ClearFullRows()
	pts := e.rules.Scoring.Award(rows)
	e.score += pts
	e.lines += rows
	e.intervalMillis = e.rules.Speed.Next(e.intervalMillis, rows, e.rampScore, e.score)
	e.rampScore = e.score

	e.spawn()
	return DropResult{
		Locked:      true,
		RowsCleared: rows,
		Points:      pts,
		GameOver:    e.status == StatusOver,
	}
}

// spawn places the next bag kind at the spawn point and ends the game when
// it does not fit.
func (e *Engine) spawn() {
	e.piece = Piece{
		Kind:     e.bag.Next(),
		Rotation: 0,
		Origin:   e.cfg.Spawn,
	}
	if e.Collides(0, 0, 0) {
		e.status = StatusOver
	}
}

// Width returns the board width including walls.
func (e *Engine) Width() int {
	return e.board.Width()
}

// Height returns the board height including the floor.
func (e *Engine) Height() int {
	return e.board.Height()
}

// Cell returns the board cell at (x, y), not including the active piece.
func (e *Engine) Cell(x, y int) Cell {
	return e.board.At(x, y)
}

// Board returns a copy of the locked cells.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}

// Piece returns the active piece.
func (e *Engine) Piece() Piece {
	return e.piece
}

// PieceCells returns the absolute cells of the active piece.
func (e *Engine) PieceCells() [4]core.Point {
	return e.piece.Cells()
}

// Ghost returns the origin the active piece would lock at if hard dropped.
func (e *Engine) Ghost() core.Point {
	return e.piece.Origin.Add(core.Pt(0, e.dropDistance()))
}

// Next returns the kind that will spawn after the active piece locks.
func (e *Engine) Next() Kind {
	return e.bag.Peek()
}

// Score returns the current score. It stays readable after game over.
func (e *Engine) Score() int {
	return e.score
}

// Lines returns the total rows cleared.
func (e *Engine) Lines() int {
	return e.lines
}

// Level is a display level, one per ten cleared rows.
func (e *Engine) Level() int {
	return e.lines/10 + 1
}

// Status returns whether the game is still running.
func (e *Engine) Status() Status {
	return e.status
}

// Over reports whether the game has ended.
func (e *Engine) Over() bool {
	return e.status == StatusOver
}

// Paused reports whether the game is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// Rules returns the ruleset the engine was built with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// TickIntervalMillis returns the current gravity interval in milliseconds.
func (e *Engine) TickIntervalMillis() int {
	return e.intervalMillis
}

// TickInterval returns the current gravity interval. Drivers re-read it
// after every tick since a lock may shorten it.
func (e *Engine) TickInterval() time.Duration {
	return millis(e.intervalMillis)
}
