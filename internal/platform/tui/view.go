package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Layout of the play screen, in terminal cells. Every board cell is drawn
// two columns wide so blocks look square.
const (
	cellW      = 2
	boardX     = 1
	boardY     = 0
	panelGap   = 3
	panelW     = 16
	previewY   = 2
	previewH   = 6
	minPanelH  = 16
	blockRunes = "██"
	ghostRunes = "░░"
	emptyRunes = " ·"
)

// layoutSize returns the screen size needed to draw a board of w x h cells.
// The title sits in the panel so the well can start on the top row.
func layoutSize(w, h int) (int, int) {
	return panelX(w) + panelW, boardY + max(h, minPanelH)
}

func panelX(w int) int {
	return boardX + w*cellW + panelGap
}

// drawCell writes one board cell at board coordinates (x, y).
func drawCell(s *core.Screen, x, y int, runes string, c core.Color) {
	sx := boardX + x*cellW
	i := 0
	for _, r := range runes {
		s.SetCell(sx+i, boardY+y, r, c)
		i++
	}
}

// drawGame renders the well, the active piece with its ghost, and the side
// panel.
func drawGame(s *core.Screen, e *tetris.Engine, ruleset string) {
	s.Clear()
	w, h := e.Width(), e.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := e.Cell(x, y); !c.Empty() {
				drawCell(s, x, y, blockRunes, c.Color)
				continue
			}
			drawCell(s, x, y, emptyRunes, core.ColorDim)
		}
	}

	if !e.Over() {
		p := e.Piece()
		color := p.Kind.Color()
		ghost := tetris.Piece{Kind: p.Kind, Rotation: p.Rotation, Origin: e.Ghost()}
		for _, c := range ghost.Cells() {
			drawCell(s, c.X, c.Y, ghostRunes, color)
		}
		for _, c := range p.Cells() {
			drawCell(s, c.X, c.Y, blockRunes, color)
		}
	}

	well := core.NewRect(boardX, boardY, w*cellW, h)
	mid := boardY + h/2
	switch {
	case e.Over():
		s.DrawTextCentered(well, mid-1, " GAME OVER ", core.ColorRed)
		s.DrawTextCentered(well, mid, " r restart ", core.ColorGray)
	case e.Paused():
		s.DrawTextCentered(well, mid-1, " PAUSED ", core.ColorYellow)
	}

	drawPanel(s, e, ruleset, panelX(w))
}

func drawPanel(s *core.Screen, e *tetris.Engine, ruleset string, px int) {
	s.DrawTextColor(px, 0, "TETRIS", core.ColorWhite)
	s.DrawTextColor(px+7, 0, ruleset, core.ColorGray)

	s.DrawBox(core.NewRect(px, previewY, panelW-2, previewH), core.ColorGray)
	s.DrawTextColor(px+2, previewY, " NEXT ", core.ColorWhite)

	next := e.Next()
	for _, off := range tetris.ShapeOf(next, 0) {
		x := px + 2 + off.X*cellW
		y := previewY + 1 + off.Y
		s.SetCell(x, y, '█', next.Color())
		s.SetCell(x+1, y, '█', next.Color())
	}

	y := previewY + previewH + 1
	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", e.Score())},
		{"LINES", fmt.Sprintf("%d", e.Lines())},
		{"LEVEL", fmt.Sprintf("%d", e.Level())},
		{"SPEED", fmt.Sprintf("%dms", e.TickIntervalMillis())},
	}
	for _, st := range stats {
		s.DrawTextColor(px, y, st.label, core.ColorGray)
		s.DrawTextColor(px+7, y, st.value, core.ColorWhite)
		y += 2
	}
}
