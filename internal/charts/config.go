package charts

import (
	"fmt"
	"math"
)

// GraphConfig is the immutable configuration of a Graph.
type GraphConfig struct {
	Width      int
	Min        float64
	Max        float64
	TimeFormat string
}

// ConfigError reports a GraphConfig that cannot be rendered.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Validate checks the bar width and the value interval.
func (c GraphConfig) Validate() error {
	if c.Width < MinimumWidth {
		return &ConfigError{
			Field:  "size",
			Reason: fmt.Sprintf("the size of the graph cannot be smaller than %d", MinimumWidth),
		}
	}
	if math.IsNaN(c.Min) || math.IsInf(c.Min, 0) || math.IsNaN(c.Max) || math.IsInf(c.Max, 0) {
		return &ConfigError{Field: "min", Reason: "min and max must be finite numbers"}
	}
	if c.Min >= c.Max {
		return &ConfigError{Field: "max", Reason: "there must be some interval between min and max"}
	}
	return nil
}
