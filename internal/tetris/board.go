package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// CellState tags whether a board cell holds a block.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellOccupied
)

// Cell is one board position. Color is only meaningful when occupied.
type Cell struct {
	State CellState
	Color core.Color
}

// Empty reports whether the cell holds no block.
func (c Cell) Empty() bool {
	return c.State == CellEmpty
}

// Occupied returns an occupied cell tagged with color c.
func Occupied(c core.Color) Cell {
	return Cell{State: CellOccupied, Color: c}
}

// BorderColor tags the permanent wall and floor cells.
const BorderColor = core.ColorGray

var borderCell = Occupied(BorderColor)

// Board is the well: a width x height grid whose left column, right column
// and bottom row are permanent border cells. Everything else is interior.
type Board struct {
	width  int
	height int
	cells  []Cell // row-major
}

// NewBoard returns an empty board with its border already laid down.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if b.IsBorder(x, y) {
				b.cells[y*width+x] = borderCell
			}
		}
	}
	return b
}

// Width returns the number of columns, border included.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows, floor included.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) lies on the grid.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsBorder reports whether (x, y) is a wall or floor cell.
func (b *Board) IsBorder(x, y int) bool {
	return x == 0 || x == b.width-1 || y == b.height-1
}

// At returns the cell at (x, y). Off-grid positions read as border.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return borderCell
	}
	return b.cells[y*b.width+x]
}

// Blocked reports whether a block may not occupy (x, y).
func (b *Board) Blocked(x, y int) bool {
	return !b.InBounds(x, y) || !b.cells[y*b.width+x].Empty()
}

// Set writes an interior cell. Border and off-grid writes are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) || b.IsBorder(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		width:  b.width,
		height: b.height,
		cells:  make([]Cell, len(b.cells)),
	}
	copy(c.cells, b.cells)
	return c
}

func (b *Board) rowFull(y int) bool {
	for x := 1; x < b.width-1; x++ {
		if b.cells[y*b.width+x].Empty() {
			return false
		}
	}
	return true
}

// collapse removes interior row `row`: each row above moves down by one and
// row 0 becomes empty.
func (b *Board) collapse(row int) {
	for y := row; y > 0; y-- {
		copy(b.cells[y*b.width+1:(y+1)*b.width-1], b.cells[(y-1)*b.width+1:y*b.width-1])
	}
	for x := 1; x < b.width-1; x++ {
		b.cells[x] = Cell{}
	}
}

// ClearFullRows removes every full interior row, scanning bottom-up and
// re-examining a row index after it collapses. Returns the rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := b.height - 2; y >= 0; {
		if b.rowFull(y) {
			b.collapse(y)
			cleared++
			continue
		}
		y--
	}
	return cleared
}

// String draws the board as text: '#' for border, 'o' for blocks, '.' for empty.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			switch {
			case b.IsBorder(x, y):
				sb.WriteByte('#')
			case b.cells[y*b.width+x].Empty():
				sb.WriteByte('.')
			default:
				sb.WriteByte('o')
			}
		}
	}
	return sb.String()
}
