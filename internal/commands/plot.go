package commands

import (
	"context"
	"io"

	"github.com/akasprzok/plot/internal/input"
)

type PlotCmd struct{}

// Run plots stdin until it ends or the stream is cancelled. Closing the input
// on cancel releases the pending read where the descriptor allows it.
func (p *PlotCmd) Run(ctx *Context) error {
	return ctx.stream(func(sctx context.Context, out chan<- float64) error {
		if closer, ok := ctx.In.(io.Closer); ok {
			stop := context.AfterFunc(sctx, func() {
				closer.Close()
			})
			defer stop()
		}
		return input.Scan(sctx, ctx.In, out, ctx.Log)
	})
}
