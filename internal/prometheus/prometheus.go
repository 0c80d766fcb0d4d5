package prometheus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/prometheus/prometheus/promql/parser"
)

// ErrNoData is returned when a query matched nothing.
var ErrNoData = errors.New("query returned no data")

type prometheusClient struct {
	v1api v1.API
}

type Client interface {
	Sample(ctx context.Context, query string, timeout time.Duration) (model.SampleValue, v1.Warnings, error)
}

func NewClient(url string) (Client, error) {
	client, err := api.NewClient(api.Config{
		Address: url,
	})
	if err != nil {
		return nil, fmt.Errorf("creating prometheus client: %w", err)
	}
	v1api := v1.NewAPI(client)
	return &prometheusClient{v1api: v1api}, nil
}

// Sample runs an instant query that must evaluate to a scalar or to a vector
// with exactly one sample.
func (c *prometheusClient) Sample(ctx context.Context, query string, timeout time.Duration) (model.SampleValue, v1.Warnings, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	result, warnings, err := c.v1api.Query(ctx, query, time.Now(), v1.WithTimeout(timeout))
	if err != nil {
		return 0, warnings, err
	}
	v, err := sampleValue(result)
	return v, warnings, err
}

func sampleValue(result model.Value) (model.SampleValue, error) {
	switch result.Type() {
	case model.ValScalar:
		return result.(*model.Scalar).Value, nil
	case model.ValVector:
		v := result.(model.Vector)
		switch len(v) {
		case 0:
			return 0, ErrNoData
		case 1:
			return v[0].Value, nil
		default:
			return 0, fmt.Errorf("query returned %d series, want 1", len(v))
		}
	case model.ValNone, model.ValMatrix, model.ValString:
		return 0, fmt.Errorf("unexpected result type: %s", result.Type())
	default:
		return 0, fmt.Errorf("unknown result type: %s", result.Type())
	}
}

// ParseQuery checks that query is valid PromQL and returns it pretty-printed.
func ParseQuery(query string) (string, error) {
	ast, err := parser.ParseExpr(query)
	if err != nil {
		return "", fmt.Errorf("parsing query: %w", err)
	}
	return ast.Pretty(0), nil
}
