package charts

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

var fixedTime = time.Date(2024, 3, 9, 14, 5, 7, 123000000, time.UTC)

func fixedClock() time.Time {
	return fixedTime
}

func newTestGraph(t *testing.T, width int, min, max float64, opts ...Option) *Graph {
	t.Helper()
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	g, err := NewGraph(GraphConfig{Width: width, Min: min, Max: max, TimeFormat: DefaultTimeFormat}, opts...)
	if err != nil {
		t.Fatalf("NewGraph() returned error: %v", err)
	}
	return g
}

// fields splits a row on the side glyph, dropping the empty edges and the
// single blank of padding around each field.
func fields(t *testing.T, row string) []string {
	t.Helper()
	parts := strings.Split(row, "║")
	if len(parts) != 7 {
		t.Fatalf("row %q has %d parts, want 7", row, len(parts))
	}
	out := make([]string, 0, 5)
	for _, p := range parts[1:6] {
		if !strings.HasPrefix(p, " ") || !strings.HasSuffix(p, " ") {
			t.Fatalf("field %q is not padded with blanks", p)
		}
		out = append(out, p[1:len(p)-1])
	}
	return out
}

func barField(t *testing.T, row string) []rune {
	t.Helper()
	return []rune(fields(t, row)[1])
}

func TestNewGraphValidation(t *testing.T) {
	tests := []struct {
		name      string
		cfg       GraphConfig
		wantField string
	}{
		{"width below minimum", GraphConfig{Width: 11, Min: 0, Max: 100}, "size"},
		{"zero width", GraphConfig{Width: 0, Min: 0, Max: 100}, "size"},
		{"empty interval", GraphConfig{Width: 12, Min: 5, Max: 5}, "max"},
		{"inverted interval", GraphConfig{Width: 12, Min: 10, Max: -10}, "max"},
		{"infinite max", GraphConfig{Width: 12, Min: 0, Max: math.Inf(1)}, "min"},
		{"NaN min", GraphConfig{Width: 12, Min: math.NaN(), Max: 1}, "min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.TimeFormat = DefaultTimeFormat
			g, err := NewGraph(tt.cfg)
			if err == nil {
				t.Fatalf("NewGraph() = %v, want error", g)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("NewGraph() error = %T, want *ConfigError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestNewGraphAcceptsMinimumWidth(t *testing.T) {
	g := newTestGraph(t, MinimumWidth, 0, 1)
	if g.Config().Width != MinimumWidth {
		t.Errorf("Config().Width = %d, want %d", g.Config().Width, MinimumWidth)
	}
}

func TestRowHalfway(t *testing.T) {
	g := newTestGraph(t, 12, 0, 10)

	r := g.Measure(5)
	if r.Fill != 48 {
		t.Fatalf("Measure(5).Fill = %d, want 48", r.Fill)
	}

	want := strings.Repeat("█", 5) + "█" + strings.Repeat(" ", 6)
	got := string(barField(t, g.Row(5)))
	if got != want {
		t.Errorf("bar = %q, want %q", got, want)
	}
}

func TestRowLayout(t *testing.T) {
	g := newTestGraph(t, 12, 0, 10)

	got := g.Row(2.5)
	want := "║ 14:05:07 ║ ███          ║ 0.00 ║     2.50 ║ 10.00 ║"
	if got != want {
		t.Errorf("Row(2.5) = %q, want %q", got, want)
	}
}

func TestBarFill(t *testing.T) {
	// One sub-step per unit: value n fills n eighths.
	g := newTestGraph(t, 12, 0, 96)

	tests := []struct {
		value float64
		want  string
	}{
		{0, strings.Repeat(" ", 12)},
		{0.5, strings.Repeat(" ", 12)},
		{1, "▏" + strings.Repeat(" ", 11)},
		{2, "▎" + strings.Repeat(" ", 11)},
		{3, "▍" + strings.Repeat(" ", 11)},
		{4, "▌" + strings.Repeat(" ", 11)},
		{5, "▋" + strings.Repeat(" ", 11)},
		{6, "▊" + strings.Repeat(" ", 11)},
		{7, "▉" + strings.Repeat(" ", 11)},
		{8, "█" + strings.Repeat(" ", 11)},
		{9, "█▏" + strings.Repeat(" ", 10)},
		{16, "██" + strings.Repeat(" ", 10)},
		{17.9, "██▏" + strings.Repeat(" ", 9)},
		{95, strings.Repeat("█", 11) + "▉"},
		{96, strings.Repeat("█", 12)},
	}

	for _, tt := range tests {
		t.Run(formatLabel(tt.value), func(t *testing.T) {
			got := string(barField(t, g.Row(tt.value)))
			if got != tt.want {
				t.Errorf("bar(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestRowInRangeHasExactWidth(t *testing.T) {
	for _, width := range []int{12, 13, 37, 100} {
		g := newTestGraph(t, width, -3.5, 7.25)
		for v := -3.5; v <= 7.25; v += 0.125 {
			bar := barField(t, g.Row(v))
			if len(bar) != width {
				t.Fatalf("width %d: len(bar(%v)) = %d, want %d", width, v, len(bar), width)
			}
			if strings.ContainsRune(string(bar), '?') {
				t.Fatalf("width %d: bar(%v) = %q contains the out-of-bounds marker", width, v, string(bar))
			}
		}
	}
}

func TestRowAtMin(t *testing.T) {
	g := newTestGraph(t, 20, -10, 10)

	r := g.Measure(-10)
	if r.OutOfBounds {
		t.Error("Measure(min).OutOfBounds = true, want false")
	}
	if r.Fill != 0 {
		t.Errorf("Measure(min).Fill = %d, want 0", r.Fill)
	}
	got := string(barField(t, g.Row(-10)))
	if got != strings.Repeat(" ", 20) {
		t.Errorf("bar(min) = %q, want all blanks", got)
	}
}

func TestRowAtMax(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		min, max float64
	}{
		{"integers", 12, 0, 100},
		{"fractional span", 13, 0.1, 0.4},
		{"negative range", 50, -7.3, -0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraph(t, tt.width, tt.min, tt.max)
			r := g.Measure(tt.max)
			if r.OutOfBounds {
				t.Error("Measure(max).OutOfBounds = true, want false")
			}
			if r.Fill != tt.width*SubSteps {
				t.Errorf("Measure(max).Fill = %d, want %d", r.Fill, tt.width*SubSteps)
			}
			bar := barField(t, g.Row(tt.max))
			if len(bar) != tt.width {
				t.Fatalf("len(bar(max)) = %d, want %d", len(bar), tt.width)
			}
			if bar[tt.width-1] != '█' {
				t.Errorf("last cell = %q, want full block", bar[tt.width-1])
			}
		})
	}
}

func TestRowOutOfBounds(t *testing.T) {
	g := newTestGraph(t, 12, 0, 100)

	tests := []struct {
		name      string
		value     float64
		wantValue string
	}{
		{"above max", 150, "  100.00"},
		{"below min", -1, "    0.00"},
		{"infinite", math.Inf(1), "  100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := g.Measure(tt.value)
			if !r.OutOfBounds {
				t.Errorf("Measure(%v).OutOfBounds = false, want true", tt.value)
			}

			f := fields(t, g.Format(r))
			bar := []rune(f[1])
			if len(bar) != 12 {
				t.Fatalf("len(bar) = %d, want 12", len(bar))
			}
			for i, c := range bar {
				want := ' '
				if i == 12/2-1 {
					want = '?'
				}
				if c != want {
					t.Errorf("bar[%d] = %q, want %q", i, c, want)
				}
			}
			if f[3] != tt.wantValue {
				t.Errorf("value field = %q, want %q", f[3], tt.wantValue)
			}
		})
	}
}

type bracketHighlighter struct{}

func (bracketHighlighter) Highlight(s string, tone Tone) string {
	if tone == Alert {
		return "<" + s + ">"
	}
	return s
}

func TestRowOutOfBoundsIsHighlighted(t *testing.T) {
	g := newTestGraph(t, 12, 0, 100, WithHighlighter(bracketHighlighter{}))

	if got := g.Row(150); !strings.Contains(got, "<?>") {
		t.Errorf("Row(150) = %q, want highlighted marker", got)
	}
	if got := g.Row(50); strings.Contains(got, "<") {
		t.Errorf("Row(50) = %q, want no highlighted span", got)
	}
}

func TestRowNaN(t *testing.T) {
	g := newTestGraph(t, 12, 0, 100)

	r := g.Measure(math.NaN())
	if !r.OutOfBounds {
		t.Error("Measure(NaN).OutOfBounds = false, want true")
	}
	if r.Fill != 0 {
		t.Errorf("Measure(NaN).Fill = %d, want 0", r.Fill)
	}
}

func TestRowIsIdempotent(t *testing.T) {
	g := newTestGraph(t, 40, -1, 1)

	for _, v := range []float64{-1, -0.33, 0, 0.5, 1, 3} {
		if a, b := g.Row(v), g.Row(v); a != b {
			t.Errorf("Row(%v) differs between calls: %q vs %q", v, a, b)
		}
	}
}

func TestFrame(t *testing.T) {
	g := newTestGraph(t, 12, 0, 10)

	top := g.Frame(true)
	bottom := g.Frame(false)

	wantTop := "╔══════════╦══════════════╦══════╦══════════╦═══════╗"
	if top != wantTop {
		t.Errorf("Frame(true) = %q, want %q", top, wantTop)
	}

	topRunes, bottomRunes := []rune(top), []rune(bottom)
	if len(topRunes) != len(bottomRunes) {
		t.Fatalf("frame lengths differ: %d vs %d", len(topRunes), len(bottomRunes))
	}
	for i := range topRunes {
		switch topRunes[i] {
		case '╔':
			if bottomRunes[i] != '╚' {
				t.Errorf("bottom[%d] = %q, want '╚'", i, bottomRunes[i])
			}
		case '╗':
			if bottomRunes[i] != '╝' {
				t.Errorf("bottom[%d] = %q, want '╝'", i, bottomRunes[i])
			}
		case '╦':
			if bottomRunes[i] != '╩' {
				t.Errorf("bottom[%d] = %q, want '╩'", i, bottomRunes[i])
			}
		default:
			if bottomRunes[i] != topRunes[i] {
				t.Errorf("bottom[%d] = %q, want %q", i, bottomRunes[i], topRunes[i])
			}
		}
	}
}

func TestFrameAlignsWithRow(t *testing.T) {
	g := newTestGraph(t, 30, -250, 1250.5)

	frame := []rune(g.Frame(true))
	row := []rune(g.Row(17))
	if len(frame) != len(row) {
		t.Fatalf("len(frame) = %d, len(row) = %d, want equal", len(frame), len(row))
	}
	if len(frame) != g.LineWidth() {
		t.Errorf("LineWidth() = %d, want %d", g.LineWidth(), len(frame))
	}
	for i, c := range frame {
		if c == '╦' && row[i] != '║' {
			t.Errorf("row[%d] = %q, want '║' under junction", i, row[i])
		}
	}
}

func TestChrome(t *testing.T) {
	g := newTestGraph(t, 12, 0, 10)
	if got, want := g.Chrome()+12, g.LineWidth(); got != want {
		t.Errorf("Chrome()+width = %d, want %d", got, want)
	}
}

func TestTimeFormatMilliseconds(t *testing.T) {
	g, err := NewGraph(GraphConfig{Width: 12, Min: 0, Max: 1, TimeFormat: "%H:%M:%S.%L"}, WithClock(fixedClock))
	if err != nil {
		t.Fatalf("NewGraph() returned error: %v", err)
	}
	if got := fields(t, g.Row(0))[0]; got != "14:05:07.123" {
		t.Errorf("time field = %q, want %q", got, "14:05:07.123")
	}
}

func TestRowOutOfBoundsMarkerIndex(t *testing.T) {
	for _, width := range []int{12, 13, 20, 101} {
		g := newTestGraph(t, width, 0, 1)
		bar := barField(t, g.Row(2))
		if got := strings.IndexRune(string(bar), '?'); got != width/2-1 {
			t.Errorf("width %d: marker at byte %d, want %d", width, got, width/2-1)
		}
	}
}
