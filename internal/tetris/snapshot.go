package tetris

import "strings"

// Snapshot captures the complete game state for determinism checks and
// headless output.
type Snapshot struct {
	Ticks          uint64
	Locks          uint64
	Score          int
	Lines          int
	Level          int
	IntervalMillis int
	Status         Status
	Paused         bool
	Piece          Piece
	Next           Kind
	Rows           []string // Board.String() split by row, without the active piece
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Ticks:          e.ticks,
		Locks:          e.locks,
		Score:          e.score,
		Lines:          e.lines,
		Level:          e.Level(),
		IntervalMillis: e.intervalMillis,
		Status:         e.status,
		Paused:         e.paused,
		Piece:          e.piece,
		Next:           e.bag.Peek(),
		Rows:           strings.Split(e.board.String(), "\n"),
	}
}
