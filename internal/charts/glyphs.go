package charts

import "github.com/NimbleMarkets/ntcharts/canvas/runes"

// Glyphs is the set of runes a Graph draws with.
type Glyphs struct {
	// Ramp holds the partial blocks in increasing fill, eighths of a cell.
	Ramp [SubSteps]rune

	Side       rune
	Horizontal rune
	Blank      rune
	Unknown    rune

	TopLeft, TopRight, TopJunction          rune
	BottomLeft, BottomRight, BottomJunction rune
}

// DefaultGlyphs draws with the block elements and double box-drawing lines.
var DefaultGlyphs = Glyphs{
	Ramp:           [SubSteps]rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉', runes.FullBlock},
	Side:           '║',
	Horizontal:     '═',
	Blank:          ' ',
	Unknown:        '?',
	TopLeft:        '╔',
	TopRight:       '╗',
	TopJunction:    '╦',
	BottomLeft:     '╚',
	BottomRight:    '╝',
	BottomJunction: '╩',
}

// Full returns the glyph of a completely filled cell.
func (g Glyphs) Full() rune {
	return g.Ramp[SubSteps-1]
}

func (g Glyphs) corners(top bool) (left, junction, right rune) {
	if top {
		return g.TopLeft, g.TopJunction, g.TopRight
	}
	return g.BottomLeft, g.BottomJunction, g.BottomRight
}
