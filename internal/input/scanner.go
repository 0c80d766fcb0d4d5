package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

type chunk struct {
	text string
	err  error
}

// Scan reads r line by line and sends every parsed value to out, in order.
// It returns nil at end of input or as soon as ctx is cancelled, even while
// a read is still pending. A final line without a newline is dropped like any
// other malformed line.
func Scan(ctx context.Context, r io.Reader, out chan<- float64, log zerolog.Logger) error {
	chunks := make(chan chunk)
	// A read on a blocking descriptor cannot be interrupted, so the reader
	// outlives Scan until its read returns.
	go readLines(ctx, r, chunks)

	lineNo := 0
	for {
		var c chunk
		select {
		case c = <-chunks:
		case <-ctx.Done():
			return nil
		}

		if len(c.text) > 0 {
			lineNo++
			v, ok := ParseLine(c.text)
			if !ok {
				log.Debug().Int("line", lineNo).Str("text", c.text).Msg("skipping line")
			} else {
				select {
				case out <- v:
				case <-ctx.Done():
					return nil
				}
			}
		}
		if c.err == nil {
			continue
		}
		if errors.Is(c.err, io.EOF) || ctx.Err() != nil || errors.Is(c.err, os.ErrClosed) {
			return nil
		}
		return fmt.Errorf("reading input: %w", c.err)
	}
}

func readLines(ctx context.Context, r io.Reader, chunks chan<- chunk) {
	br := bufio.NewReader(r)
	for {
		text, err := br.ReadString('\n')
		select {
		case chunks <- chunk{text: text, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}
