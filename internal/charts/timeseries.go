package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

const historyDataSet = "value"

var lineStyle = lipgloss.NewStyle().
	Foreground(LineColor)

var axisStyle = lipgloss.NewStyle().
	Foreground(AxisColor)

var labelStyle = lipgloss.NewStyle().
	Foreground(LabelColor)

// History keeps the most recent readings of a session in a ring buffer.
type History struct {
	readings []Reading
	next     int
	full     bool
}

// NewHistory returns a History holding at most capacity readings.
func NewHistory(capacity int) *History {
	return &History{readings: make([]Reading, max(capacity, 1))}
}

// Add records r, evicting the oldest reading when the buffer is full.
func (h *History) Add(r Reading) {
	h.readings[h.next] = r
	h.next++
	if h.next == len(h.readings) {
		h.next = 0
		h.full = true
	}
}

// Len is the number of readings held.
func (h *History) Len() int {
	if h.full {
		return len(h.readings)
	}
	return h.next
}

// Readings returns the held readings, oldest first.
func (h *History) Readings() []Reading {
	if !h.full {
		return append([]Reading(nil), h.readings[:h.next]...)
	}
	out := make([]Reading, 0, len(h.readings))
	out = append(out, h.readings[h.next:]...)
	return append(out, h.readings[:h.next]...)
}

// Stats summarizes raw values; NaN readings only count toward Count and OutOfBounds.
type Stats struct {
	Count       int
	OutOfBounds int
	Min         float64
	Max         float64
	Mean        float64
}

func (h *History) Stats() Stats {
	var (
		s     Stats
		sum   float64
		valid int
	)
	s.Min = math.Inf(1)
	s.Max = math.Inf(-1)
	for _, r := range h.Readings() {
		s.Count++
		if r.OutOfBounds {
			s.OutOfBounds++
		}
		if math.IsNaN(r.Value) {
			continue
		}
		valid++
		sum += r.Value
		s.Min = math.Min(s.Min, r.Value)
		s.Max = math.Max(s.Max, r.Value)
	}
	if valid == 0 {
		s.Min, s.Max = 0, 0
		return s
	}
	s.Mean = sum / float64(valid)
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("samples %d  min %.2f  max %.2f  mean %.2f  out of bounds %d",
		s.Count, s.Min, s.Max, s.Mean, s.OutOfBounds)
}

// Summary draws the history as a line chart bounded like the graph, followed
// by a stats line. It returns an empty string for an empty history and only
// the stats line when every reading shares one timestamp.
func Summary(h *History, cfg GraphConfig, width int) string {
	readings := h.Readings()
	if len(readings) == 0 {
		return ""
	}
	// A chart needs some time on its X axis.
	if !readings[len(readings)-1].Time.After(readings[0].Time) {
		return h.Stats().String()
	}

	height := max(width/ChartHeightRatio, MinChartHeight)

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = timeserieslinechart.HourTimeLabelFormatter()
	lc.SetYRange(cfg.Min, cfg.Max)     // set expected Y values (values can be less or greater than what is displayed)
	lc.SetViewYRange(cfg.Min, cfg.Max) // setting display Y values will fail unless set expected Y values first
	lc.SetStyle(lineStyle)
	lc.SetLineStyle(runes.ThinLineStyle)
	lc.SetDataSetStyle(historyDataSet, lineStyle)

	for _, r := range readings {
		if math.IsNaN(r.Clamped) {
			continue
		}
		lc.PushDataSet(historyDataSet, timeserieslinechart.TimePoint{
			Time:  r.Time,
			Value: r.Clamped,
		})
	}

	lc.DrawBrailleAll()

	var b strings.Builder
	b.WriteString(lc.View())
	b.WriteString("\n")
	b.WriteString(h.Stats().String())
	return b.String()
}
