package provider

import (
	"context"
	"time"

	"trendboard/pkg/trends"
)

// Client is the upstream search-interest provider. Implementations
// return raw tables; shaping stays in pkg/trends.
type Client interface {
	InterestOverTime(ctx context.Context, params trends.QueryParameters) (trends.InterestTable, error)
	InterestByRegion(ctx context.Context, params trends.QueryParameters) (trends.RegionTable, error)
	RelatedQueries(ctx context.Context, params trends.QueryParameters) ([]trends.RelatedQuery, error)
}

// Config holds connection settings for the HTTP provider client.
type Config struct {
	BaseURL         string
	APIKey          string
	RequestTimeout  time.Duration
	MaxRetries      int
	RetryDelay      time.Duration
	MaxConnsPerHost int
}

// DefaultConfig returns settings matching the provider's published
// limits: two retries with a short initial delay.
func DefaultConfig(baseURL, apiKey string) Config {
	return Config{
		BaseURL:         baseURL,
		APIKey:          apiKey,
		RequestTimeout:  30 * time.Second,
		MaxRetries:      2,
		RetryDelay:      300 * time.Millisecond,
		MaxConnsPerHost: 64,
	}
}

// Stats reports request counters for the client.
type Stats struct {
	TotalRequests  uint64 `json:"total_requests"`
	FailedRequests uint64 `json:"failed_requests"`
}

// StatsReporter is implemented by clients that track request counters;
// the dashboard surfaces them on its stats endpoint.
type StatsReporter interface {
	Stats() Stats
}
