package commands

import (
	"context"
	"io"
	"time"

	"github.com/akasprzok/plot/internal/prometheus"
	"github.com/rs/zerolog"
)

// Context carries what every command needs from the process.
type Context struct {
	Graph   GraphFlags
	Timeout time.Duration

	In  io.Reader
	Out io.Writer
	Log zerolog.Logger

	// Parent bounds the stream; nil means context.Background().
	Parent context.Context
	// Clock stamps rows; nil means time.Now.
	Clock func() time.Time
	// NewClient builds the Prometheus client; nil means prometheus.NewClient.
	NewClient func(url string) (prometheus.Client, error)
}

// GraphFlags configure the graph and the output stream for every command.
type GraphFlags struct {
	Max      float64 `name:"max" short:"M" help:"Graph ceiling." default:"100"`
	Min      float64 `name:"min" short:"m" help:"Graph zero." default:"0"`
	Size     int     `name:"size" short:"s" help:"Graph length size in chars." default:"100"`
	Strftime string  `name:"strftime" short:"t" help:"Timestamp format, strftime style (%L for milliseconds)." default:"%H:%M:%S"`
	Fit      bool    `name:"fit" help:"Size the graph to the terminal width, ignoring --size."`

	Footer   bool    `name:"footer" help:"Draw the bottom border when the stream ends."`
	Color    string  `name:"color" help:"Highlight out of bounds values." default:"auto" enum:"auto,always,never"`
	Output   string  `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,json,yaml"`
	Throttle float64 `name:"throttle" help:"Maximum rows per second, 0 for no limit." default:"0"`
	Count    int     `name:"count" short:"n" help:"Stop after this many rows, 0 for no limit." default:"0"`

	Summary bool `name:"summary" help:"Chart the session once the stream ends."`
	History int  `name:"history" help:"Number of rows kept for --summary." default:"1024"`
}

type CLI struct {
	Graph GraphFlags `embed:""`

	Timeout  time.Duration `help:"Timeout for Prometheus queries." default:"60s"`
	LogLevel string        `name:"log-level" help:"Log level, logs go to stderr." default:"warn" enum:"trace,debug,info,warn,error"`
	LogFile  string        `name:"log-file" help:"Also write logs to this rotating file." type:"path"`

	Plot  PlotCmd  `cmd:"" default:"withargs" help:"Plot numbers read from stdin, one per line."`
	Query QueryCmd `cmd:"" help:"Plot a Prometheus query, sampled on an interval."`
}
