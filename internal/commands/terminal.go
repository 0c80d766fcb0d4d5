package commands

import (
	"io"
	"os"

	"github.com/akasprzok/plot/internal/charts"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// terminalWidth returns the column count of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

// highlighter picks how out of bounds markers look on w.
func highlighter(w io.Writer, mode string) charts.Highlighter {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "always":
		return charts.HighlighterFor(r, termenv.ANSI)
	case "never":
		return charts.HighlighterFor(r, termenv.Ascii)
	default:
		return charts.HighlighterFor(r, r.ColorProfile())
	}
}
