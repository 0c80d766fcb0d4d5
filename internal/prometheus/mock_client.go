package prometheus

import (
	"context"
	"time"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	SampleFunc func(ctx context.Context, query string, timeout time.Duration) (model.SampleValue, v1.Warnings, error)
}

func (m *MockClient) Sample(ctx context.Context, query string, timeout time.Duration) (model.SampleValue, v1.Warnings, error) {
	if m.SampleFunc != nil {
		return m.SampleFunc(ctx, query, timeout)
	}
	return 0, nil, nil
}
