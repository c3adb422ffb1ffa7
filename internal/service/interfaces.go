package service

import (
	"context"

	"trendboard/pkg/trends"
)

// AnalyzeRequest carries one user action's parameters. TopN and
// MinInterest arrive already merged with configured defaults; Keyword
// selects the region-ranking column (empty means first keyword).
type AnalyzeRequest struct {
	Keywords    []string
	Geo         string
	Timeframe   string
	Keyword     string
	TopN        int
	MinInterest int
}

// AnalyzeResult is the combined dashboard payload.
type AnalyzeResult struct {
	Query      trends.QueryParameters  `json:"query"`
	TimeSeries []trends.InterestPoint  `json:"time_series"`
	Regions    []trends.RegionInterest `json:"regions"`
	Related    []trends.RelatedQuery   `json:"related,omitempty"`
}

// Explorer orchestrates query building, provider calls and shaping.
// Every method is stateless; concurrent calls need no coordination.
type Explorer interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error)
	InterestOverTime(ctx context.Context, req AnalyzeRequest) ([]trends.InterestPoint, error)
	TopRegions(ctx context.Context, req AnalyzeRequest) ([]trends.RegionInterest, error)
	RelatedQueries(ctx context.Context, req AnalyzeRequest) ([]trends.RelatedQuery, error)
}
