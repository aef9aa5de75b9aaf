// Package script parses and replays compact command strings against an
// engine. It drives the headless sim command and scripted tests.
//
// One rune per command, whitespace ignored:
//
//	l  move left      r  move right
//	c  rotate CW      w  rotate CCW
//	d  soft drop      h  hard drop
//	t  gravity tick   p  toggle pause
//
// A decimal prefix repeats the command that follows it, so "3t" is three
// ticks and "10l" is ten moves left.
package script

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("script syntax error")

// maxRepeat bounds a single repeat prefix.
const maxRepeat = 100000

var commands = map[rune]core.Action{
	'l': core.ActionLeft,
	'r': core.ActionRight,
	'c': core.ActionRotateCW,
	'w': core.ActionRotateCCW,
	'd': core.ActionSoftDrop,
	'h': core.ActionHardDrop,
	't': core.ActionTick,
	'p': core.ActionPause,
}

// Parse expands a script into a flat list of actions. Error offsets count
// runes, not bytes.
func Parse(src string) ([]core.Action, error) {
	var (
		out    []core.Action
		digits []rune
		start  int
		i      = -1
	)

	for _, r := range src {
		i++
		switch {
		case unicode.IsSpace(r):
			if len(digits) > 0 {
				return nil, fmt.Errorf("%w: offset %d: repeat count %s is not followed by a command", ErrSyntax, i, string(digits))
			}
		case r >= '0' && r <= '9':
			if len(digits) == 0 {
				start = i
			}
			digits = append(digits, r)
		default:
			act, ok := commands[r]
			if !ok {
				return nil, fmt.Errorf("%w: offset %d: unknown command %q", ErrSyntax, i, r)
			}
			n := 1
			if len(digits) > 0 {
				v, err := strconv.Atoi(string(digits))
				if err != nil || v > maxRepeat {
					return nil, fmt.Errorf("%w: offset %d: repeat count %s out of range", ErrSyntax, start, string(digits))
				}
				n = v
				digits = digits[:0]
			}
			for range n {
				out = append(out, act)
			}
		}
	}
	if len(digits) > 0 {
		return nil, fmt.Errorf("%w: offset %d: repeat count %s is not followed by a command", ErrSyntax, start, string(digits))
	}
	return out, nil
}

// Result summarizes a replay.
type Result struct {
	Applied int // Actions sent to the engine
	Locks   int
	Rows    int
	Over    bool // The game ended during the replay
}

// Run replays actions in order. Replay stops early once the game is over.
func Run(e *tetris.Engine, actions []core.Action) Result {
	var res Result
	for _, act := range actions {
		if e.Over() {
			break
		}
		dr := e.Apply(act)
		res.Applied++
		if dr.Locked {
			res.Locks++
			res.Rows += dr.RowsCleared
		}
	}
	res.Over = e.Over()
	return res
}
