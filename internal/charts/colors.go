package charts

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// AlertColor marks values that fell outside the graph bounds (bright red).
var AlertColor = lipgloss.Color("9")

// AxisColor is the color used for summary chart axes.
var AxisColor = lipgloss.Color("#CCBB44") // Olive/Yellow - high visibility

// LabelColor is the color used for summary chart labels.
var LabelColor = lipgloss.Color("#66CCEE") // Cyan - good contrast

// LineColor is the color of the summary chart line.
var LineColor = lipgloss.Color("#4477AA") // Blue

// Tone tags a span of output.
type Tone int

const (
	Normal Tone = iota
	Alert
)

// Highlighter decides how a tagged span looks on a particular sink.
type Highlighter interface {
	Highlight(s string, tone Tone) string
}

// PlainHighlighter leaves every span untouched.
type PlainHighlighter struct{}

func (PlainHighlighter) Highlight(s string, _ Tone) string {
	return s
}

// StyleHighlighter renders alert spans with a lipgloss style.
type StyleHighlighter struct {
	alert lipgloss.Style
}

// NewStyleHighlighter binds the alert style to r, so the color profile of the
// renderer's output decides which escapes are written.
func NewStyleHighlighter(r *lipgloss.Renderer) StyleHighlighter {
	return StyleHighlighter{alert: r.NewStyle().Foreground(AlertColor)}
}

func (h StyleHighlighter) Highlight(s string, tone Tone) string {
	if tone == Alert {
		return h.alert.Render(s)
	}
	return s
}

// HighlighterFor returns a Highlighter for a sink using the given profile.
// The Ascii profile has no colors, so spans are left as they are.
func HighlighterFor(r *lipgloss.Renderer, profile termenv.Profile) Highlighter {
	if profile == termenv.Ascii {
		return PlainHighlighter{}
	}
	r.SetColorProfile(profile)
	return NewStyleHighlighter(r)
}
