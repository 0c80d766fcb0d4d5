package prometheus

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog"
)

// Poller samples a query on a fixed interval.
type Poller struct {
	Client   Client
	Query    string
	Interval time.Duration
	Timeout  time.Duration
	Log      zerolog.Logger
}

// Run sends one value per tick to out, starting immediately, until ctx is
// cancelled. Failed ticks are logged and skipped so a flaky server does not
// end the stream.
func (p *Poller) Run(ctx context.Context, out chan<- float64) error {
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		if v, ok := p.poll(ctx); ok {
			select {
			case out <- v:
			case <-ctx.Done():
				return nil
			}
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil
		}
	}
}

func (p *Poller) poll(ctx context.Context) (float64, bool) {
	value, warnings, err := p.Client.Sample(ctx, p.Query, p.Timeout)
	if ctx.Err() != nil {
		return 0, false
	}
	if len(warnings) > 0 {
		p.Log.Warn().Strs("warnings", warnings).Msg("prometheus returned warnings")
	}
	if errors.Is(err, ErrNoData) {
		p.Log.Info().Str("query", p.Query).Msg("no data")
		return 0, false
	}
	if err != nil {
		p.Log.Error().Err(err).Str("query", p.Query).Msg("querying prometheus")
		return 0, false
	}
	v := float64(value)
	if math.IsNaN(v) {
		p.Log.Info().Str("query", p.Query).Msg("query evaluated to NaN")
		return 0, false
	}
	return v, true
}
