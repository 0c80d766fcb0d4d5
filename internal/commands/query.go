package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/akasprzok/plot/internal/prometheus"
)

type QueryCmd struct {
	PrometheusURL string        `help:"URL of the Prometheus endpoint." short:"p" env:"PLOT_PROMETHEUS_URL" name:"prometheus-url"`
	Query         string        `arg:"" name:"query" help:"Query to plot, it must return a scalar or a single series." required:"true"`
	Interval      time.Duration `name:"interval" short:"i" help:"Time between samples." default:"5s"`
	DryRun        bool          `name:"dry-run" help:"Print the formatted query and exit without querying."`
}

func (q *QueryCmd) Run(ctx *Context) error {
	if q.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", q.Interval)
	}
	formatted, err := prometheus.ParseQuery(q.Query)
	if err != nil {
		return err
	}
	if q.DryRun {
		fmt.Fprintln(ctx.Out, formatted)
		return nil
	}
	if q.PrometheusURL == "" {
		return errors.New("missing --prometheus-url")
	}

	newClient := ctx.NewClient
	if newClient == nil {
		newClient = prometheus.NewClient
	}
	client, err := newClient(q.PrometheusURL)
	if err != nil {
		return err
	}

	ctx.Log.Info().
		Str("url", q.PrometheusURL).
		Str("query", formatted).
		Dur("interval", q.Interval).
		Msg("sampling prometheus")

	poller := &prometheus.Poller{
		Client:   client,
		Query:    q.Query,
		Interval: q.Interval,
		Timeout:  ctx.Timeout,
		Log:      ctx.Log,
	}
	return ctx.stream(poller.Run)
}
