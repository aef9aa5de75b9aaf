package core

// Color is a terminal foreground color tag for a screen cell or a locked block.
// It is presentation data only; the engine tracks occupancy separately.
type Color uint8

const (
	ColorDefault Color = iota
	ColorCyan
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorMagenta
	ColorRed
	ColorGray
	ColorWhite
	ColorDim
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorCyan:
		return "cyan"
	case ColorBlue:
		return "blue"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorMagenta:
		return "magenta"
	case ColorRed:
		return "red"
	case ColorGray:
		return "gray"
	case ColorWhite:
		return "white"
	case ColorDim:
		return "dim"
	default:
		return "unknown"
	}
}
