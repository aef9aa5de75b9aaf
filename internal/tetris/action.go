package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Apply routes a player or driver action to the matching command. Actions
// the engine does not own (quit, restart, none) are ignored. Downward
// actions return their DropResult; every other action returns a zero value.
func (e *Engine) Apply(act core.Action) DropResult {
	switch act {
	case core.ActionLeft:
		e.MoveLeft()
	case core.ActionRight:
		e.MoveRight()
	case core.ActionRotateCW:
		e.RotateCW()
	case core.ActionRotateCCW:
		e.RotateCCW()
	case core.ActionSoftDrop:
		return e.SoftDrop()
	case core.ActionHardDrop:
		return e.HardDrop()
	case core.ActionTick:
		return e.Tick()
	case core.ActionPause:
		e.TogglePause()
	}
	return DropResult{}
}
