// Package tui provides the Bubble Tea shell for the tetris engine.
// It serializes gravity ticks and key input on one event loop, maps keys to
// engine actions, and renders the well with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one gravity step. Gen identifies the timer that
// produced it; ticks from an older generation are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends a single tick after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
