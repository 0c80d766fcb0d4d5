package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akasprzok/plot/internal/charts"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// producer sends values to out until its input ends or ctx is cancelled.
type producer func(ctx context.Context, out chan<- float64) error

// newGraph builds the graph described by the flags. With --fit the bar track
// takes whatever the terminal leaves after the other columns.
func (c *Context) newGraph() (*charts.Graph, error) {
	f := c.Graph
	cfg := charts.GraphConfig{
		Width:      f.Size,
		Min:        f.Min,
		Max:        f.Max,
		TimeFormat: f.Strftime,
	}

	opts := []charts.Option{charts.WithHighlighter(highlighter(c.Out, f.Color))}
	if c.Clock != nil {
		opts = append(opts, charts.WithClock(c.Clock))
	}

	if f.Fit {
		columns, ok := terminalWidth(c.Out)
		if !ok {
			columns = DefaultTerminalWidth
			c.Log.Debug().Int("columns", columns).Msg("output is not a terminal, using default width")
		}
		sizing := cfg
		sizing.Width = charts.MinimumWidth
		g, err := charts.NewGraph(sizing, opts...)
		if err != nil {
			return nil, err
		}
		cfg.Width = columns - g.Chrome()
	}

	return charts.NewGraph(cfg, opts...)
}

// stream renders every value from produce until the input ends, the row
// limit is reached or the process is interrupted. Interrupts are not errors.
func (c *Context) stream(produce producer) error {
	graph, err := c.newGraph()
	if err != nil {
		return err
	}
	sink, err := newSink(c.Graph.Output, c.Out, graph, c.Graph.Footer)
	if err != nil {
		return err
	}

	limit := rate.Inf
	if c.Graph.Throttle > 0 {
		limit = rate.Limit(c.Graph.Throttle)
	}
	limiter := rate.NewLimiter(limit, 1)

	var history *charts.History
	if c.Graph.Summary {
		history = charts.NewHistory(c.Graph.History)
	}

	parent := c.Parent
	if parent == nil {
		parent = context.Background()
	}
	sigCtx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Restore the default handlers after the first signal so a second one kills the process.
	context.AfterFunc(sigCtx, stop)
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	if err := sink.Begin(); err != nil {
		return err
	}

	values := make(chan float64)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(values)
		return produce(gctx, values)
	})
	g.Go(func() error {
		// Cancelling stops the producer when rendering ends first, e.g. after --count rows.
		defer cancel()
		rows := 0
		for {
			var (
				v  float64
				ok bool
			)
			select {
			case v, ok = <-values:
			case <-gctx.Done():
			}
			if !ok {
				return nil
			}
			if err := limiter.Wait(gctx); err != nil {
				return nil
			}

			r := graph.Measure(v)
			if history != nil {
				history.Add(r)
			}
			if err := sink.Write(r); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}

			rows++
			if c.Graph.Count > 0 && rows >= c.Graph.Count {
				return nil
			}
		}
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if sigCtx.Err() != nil {
		c.Log.Info().Msg("interrupted")
	}
	if err := sink.End(); err != nil {
		return err
	}
	if history != nil {
		c.printSummary(graph, history)
	}
	return nil
}

func (c *Context) printSummary(graph *charts.Graph, history *charts.History) {
	if c.Graph.Output != "graph" {
		c.Log.Warn().Str("output", c.Graph.Output).Msg("--summary only applies to graph output")
		return
	}
	width := max(graph.LineWidth()-ChartWidthPadding, charts.MinimumWidth)
	if summary := charts.Summary(history, graph.Config(), width); summary != "" {
		fmt.Fprintln(c.Out, summary)
	}
}
