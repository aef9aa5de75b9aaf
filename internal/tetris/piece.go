package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the number of tetromino kinds.
const KindCount = 7

// Kinds lists every kind in table order.
var Kinds = [KindCount]Kind{KindI, KindO, KindT, KindL, KindJ, KindS, KindZ}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if int(k) < KindCount {
		return string("IOTLJSZ"[k])
	}
	return "?"
}

// Color returns the color locked cells of this kind are tagged with.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorMagenta
	case KindL:
		return core.ColorOrange
	case KindJ:
		return core.ColorBlue
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// Shape is the four cell offsets of one rotation state, relative to the
// piece origin. Offsets live in a 4x4 box with y growing downward.
type Shape [4]core.Point

// shapes is indexed by kind, then rotation state (0 spawn, 1 CW, 2 180, 3 CCW).
// It is read-only; accessors hand out copies.
var shapes = [KindCount][]Shape{
	KindI: {
		{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}},
		{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}},
		{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}},
	},
	KindO: {
		{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	},
	KindT: {
		{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
		{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
		{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	},
	KindL: {
		{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
		{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 2}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	},
	KindJ: {
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
		{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
	},
	KindS: {
		{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}},
		{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	},
	KindZ: {
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		{{X: 2, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
		{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
		{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 2}},
	},
}

// RotationCount returns how many distinct rotation states the kind has.
func RotationCount(k Kind) int {
	return len(shapes[k])
}

// ShapeOf returns the offsets of kind k at the given rotation.
// The rotation is normalized modulo the kind's rotation count.
func ShapeOf(k Kind, rotation int) Shape {
	n := len(shapes[k])
	return shapes[k][((rotation%n)+n)%n]
}

// Piece is the active, falling tetromino.
type Piece struct {
	Kind     Kind
	Rotation int
	Origin   core.Point
}

// Cells returns the absolute board coordinates the piece covers.
func (p Piece) Cells() [4]core.Point {
	var cells [4]core.Point
	for i, off := range ShapeOf(p.Kind, p.Rotation) {
		cells[i] = p.Origin.Add(off)
	}
	return cells
}
