package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/akasprzok/plot/internal/charts"
	"gopkg.in/yaml.v2"
)

// Sink receives the readings of a stream, in order.
type Sink interface {
	Begin() error
	Write(r charts.Reading) error
	End() error
}

func newSink(format string, w io.Writer, graph *charts.Graph, footer bool) (Sink, error) {
	switch format {
	case "graph":
		return &graphSink{w: w, graph: graph, footer: footer}, nil
	case "json":
		return &jsonSink{enc: json.NewEncoder(w)}, nil
	case "yaml":
		return &yamlSink{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type graphSink struct {
	w      io.Writer
	graph  *charts.Graph
	footer bool
}

func (s *graphSink) Begin() error {
	_, err := fmt.Fprintln(s.w, s.graph.Frame(true))
	return err
}

func (s *graphSink) Write(r charts.Reading) error {
	_, err := fmt.Fprintln(s.w, s.graph.Format(r))
	return err
}

func (s *graphSink) End() error {
	if !s.footer {
		return nil
	}
	_, err := fmt.Fprintln(s.w, s.graph.Frame(false))
	return err
}

// record is the serialized form of a reading. Value is null when the raw
// value was not a finite number.
type record struct {
	Time        string   `json:"time" yaml:"time"`
	Value       *float64 `json:"value" yaml:"value"`
	Clamped     float64  `json:"clamped" yaml:"clamped"`
	OutOfBounds bool     `json:"out_of_bounds" yaml:"out_of_bounds"`
	Fill        int      `json:"fill" yaml:"fill"`
}

func toRecord(r charts.Reading) record {
	rec := record{
		Time:        r.Time.Format(time.RFC3339Nano),
		Clamped:     r.Clamped,
		OutOfBounds: r.OutOfBounds,
		Fill:        r.Fill,
	}
	if !math.IsNaN(r.Value) && !math.IsInf(r.Value, 0) {
		v := r.Value
		rec.Value = &v
	}
	return rec
}

type jsonSink struct {
	enc *json.Encoder
}

func (s *jsonSink) Begin() error { return nil }

func (s *jsonSink) Write(r charts.Reading) error {
	if err := s.enc.Encode(toRecord(r)); err != nil {
		return fmt.Errorf("marshalling reading to JSON: %w", err)
	}
	return nil
}

func (s *jsonSink) End() error { return nil }

type yamlSink struct {
	w io.Writer
}

func (s *yamlSink) Begin() error { return nil }

func (s *yamlSink) Write(r charts.Reading) error {
	yamlBytes, err := yaml.Marshal(toRecord(r))
	if err != nil {
		return fmt.Errorf("marshalling reading to YAML: %w", err)
	}
	_, err = fmt.Fprintf(s.w, "---\n%s", yamlBytes)
	return err
}

func (s *yamlSink) End() error { return nil }
