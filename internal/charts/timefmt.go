package charts

import (
	"fmt"

	"github.com/lestrrat-go/strftime"
)

// compileTimeFormat accepts the usual strftime verbs plus %L for milliseconds.
func compileTimeFormat(pattern string) (*strftime.Strftime, error) {
	f, err := strftime.New(pattern, strftime.WithMilliseconds('L'))
	if err != nil {
		return nil, &ConfigError{
			Field:  "strftime",
			Reason: fmt.Sprintf("invalid time format %q", pattern),
			Err:    err,
		}
	}
	return f, nil
}
