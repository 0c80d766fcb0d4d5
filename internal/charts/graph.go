package charts

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/mattn/go-runewidth"
)

// Graph renders values as single-row bars between a fixed min and max.
// A Graph is immutable once built and safe to reuse for every row.
type Graph struct {
	cfg     GraphConfig
	glyphs  Glyphs
	clock   func() time.Time
	hl      Highlighter
	timefmt *strftime.Strftime

	minLabel       string
	maxLabel       string
	minLabelWidth  int
	maxLabelWidth  int
	timeLabelWidth int
}

// Reading is one value placed on a Graph.
type Reading struct {
	Time        time.Time
	Value       float64
	Clamped     float64
	OutOfBounds bool
	// Fill is the filled part of the bar, in eighths of a cell.
	Fill int
}

type Option func(*Graph)

// WithClock replaces time.Now as the source of row timestamps.
func WithClock(clock func() time.Time) Option {
	return func(g *Graph) {
		g.clock = clock
	}
}

// WithHighlighter sets how alert spans are rendered.
func WithHighlighter(hl Highlighter) Option {
	return func(g *Graph) {
		g.hl = hl
	}
}

// WithGlyphs replaces the default glyph set.
func WithGlyphs(glyphs Glyphs) Option {
	return func(g *Graph) {
		g.glyphs = glyphs
	}
}

// NewGraph validates cfg and precomputes the column widths.
func NewGraph(cfg GraphConfig, opts ...Option) (*Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tf, err := compileTimeFormat(cfg.TimeFormat)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		cfg:     cfg,
		glyphs:  DefaultGlyphs,
		clock:   time.Now,
		hl:      PlainHighlighter{},
		timefmt: tf,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.minLabel = formatLabel(cfg.Min)
	g.maxLabel = formatLabel(cfg.Max)
	g.minLabelWidth = runewidth.StringWidth(g.minLabel)
	g.maxLabelWidth = runewidth.StringWidth(g.maxLabel)
	g.timeLabelWidth = runewidth.StringWidth(g.timefmt.FormatString(g.clock()))

	return g, nil
}

// Config returns the configuration the graph was built with.
func (g *Graph) Config() GraphConfig {
	return g.cfg
}

// Frame returns the top or bottom border. Its segments line up with the
// columns of every row.
func (g *Graph) Frame(top bool) string {
	left, junction, right := g.glyphs.corners(top)
	horizontal := string(g.glyphs.Horizontal)

	var b strings.Builder
	b.WriteRune(left)
	for i, w := range g.columns() {
		if i > 0 {
			b.WriteRune(junction)
		}
		b.WriteString(strings.Repeat(horizontal, 1+w+1))
	}
	b.WriteRune(right)
	return b.String()
}

// Row measures value at the current time and formats it.
func (g *Graph) Row(value float64) string {
	return g.Format(g.Measure(value))
}

// Measure clamps value into the graph bounds and computes its fill.
func (g *Graph) Measure(value float64) Reading {
	r := Reading{
		Time:    g.clock(),
		Value:   value,
		Clamped: value,
	}

	switch {
	case math.IsNaN(value):
		r.OutOfBounds = true
		return r
	case value > g.cfg.Max:
		r.OutOfBounds = true
		r.Clamped = g.cfg.Max
	case value < g.cfg.Min:
		r.OutOfBounds = true
		r.Clamped = g.cfg.Min
	}

	steps := g.cfg.Width * SubSteps
	relation := float64(steps) / (g.cfg.Max - g.cfg.Min)
	offset := int(math.Floor(relation * (r.Clamped - g.cfg.Min)))
	if r.Clamped == g.cfg.Max || offset > steps {
		offset = steps
	}
	r.Fill = max(offset, 0)
	return r
}

// Format lays out a reading as a row: time, bar, min, value, max.
func (g *Graph) Format(r Reading) string {
	side := string(g.glyphs.Side)
	blank := string(g.glyphs.Blank)
	sep := blank + side + blank

	var b strings.Builder
	b.WriteString(side + blank)
	b.WriteString(runewidth.FillRight(g.timefmt.FormatString(r.Time), g.timeLabelWidth))
	b.WriteString(sep)
	b.WriteString(g.bar(r))
	b.WriteString(sep)
	b.WriteString(g.minLabel)
	b.WriteString(sep)
	b.WriteString(fmt.Sprintf("%*.*f", ValueFieldWidth, ValuePrecision, r.Clamped))
	b.WriteString(sep)
	b.WriteString(g.maxLabel)
	b.WriteString(blank + side)
	return b.String()
}

// LineWidth is the number of terminal cells taken by a frame or a row.
func (g *Graph) LineWidth() int {
	width := 1
	for _, w := range g.columns() {
		width += 1 + w + 1 + 1
	}
	return width
}

// Chrome is the number of cells of a line not used by the bar track.
func (g *Graph) Chrome() int {
	return g.LineWidth() - g.cfg.Width
}

func (g *Graph) columns() []int {
	return []int{g.timeLabelWidth, g.cfg.Width, g.minLabelWidth, ValueFieldWidth, g.maxLabelWidth}
}

// bar renders the track. An out of bounds reading shows only the marker, at
// 0-based index width/2-1.
func (g *Graph) bar(r Reading) string {
	width := g.cfg.Width
	blank := string(g.glyphs.Blank)

	var b strings.Builder
	if r.OutOfBounds {
		middle := width / 2
		b.WriteString(strings.Repeat(blank, middle-1))
		b.WriteString(g.hl.Highlight(string(g.glyphs.Unknown), Alert))
		b.WriteString(strings.Repeat(blank, width-middle))
		return b.String()
	}

	// The -1 bias keeps an empty fill blank instead of showing the first ramp glyph.
	modulo := floorMod(r.Fill-1, SubSteps)
	blocks := (r.Fill - modulo) / SubSteps

	b.WriteString(strings.Repeat(string(g.glyphs.Full()), blocks))
	if r.Fill > 0 {
		b.WriteRune(g.glyphs.Ramp[modulo])
	} else {
		b.WriteString(blank)
	}
	b.WriteString(strings.Repeat(blank, width-blocks-1))
	return b.String()
}

func floorMod(a, n int) int {
	return ((a % n) + n) % n
}

func formatLabel(v float64) string {
	return fmt.Sprintf("%.*f", LabelPrecision, v)
}
