package service

import (
	"context"

	"trendboard/pkg/logger"
	"trendboard/pkg/provider"
	"trendboard/pkg/trends"
)

type explorer struct {
	client provider.Client
	log    *logger.Logger
}

// NewExplorer creates the explorer service on top of a provider client.
func NewExplorer(client provider.Client) Explorer {
	return &explorer{
		client: client,
		log:    logger.GetLogger().WithField("component", "explorer"),
	}
}

func (e *explorer) InterestOverTime(ctx context.Context, req AnalyzeRequest) ([]trends.InterestPoint, error) {
	params, err := trends.BuildQuery(req.Keywords, req.Geo, req.Timeframe)
	if err != nil {
		return nil, err
	}

	tbl, err := e.client.InterestOverTime(ctx, params)
	if err != nil {
		return nil, err
	}
	return e.shaper(req).ShapeTimeSeries(tbl)
}

func (e *explorer) TopRegions(ctx context.Context, req AnalyzeRequest) ([]trends.RegionInterest, error) {
	params, err := trends.BuildQuery(req.Keywords, req.Geo, req.Timeframe)
	if err != nil {
		return nil, err
	}

	tbl, err := e.client.InterestByRegion(ctx, params)
	if err != nil {
		return nil, err
	}
	return e.shaper(req).ShapeRegions(tbl, req.Keyword)
}

func (e *explorer) RelatedQueries(ctx context.Context, req AnalyzeRequest) ([]trends.RelatedQuery, error) {
	params, err := trends.BuildQuery(req.Keywords, req.Geo, req.Timeframe)
	if err != nil {
		return nil, err
	}
	return e.client.RelatedQueries(ctx, params)
}

// Analyze assembles the full dashboard payload. The time series is the
// primary view and its failures propagate; the region ranking and
// related queries degrade to empty sections so one flaky provider
// endpoint does not blank the whole page.
func (e *explorer) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	params, err := trends.BuildQuery(req.Keywords, req.Geo, req.Timeframe)
	if err != nil {
		return nil, err
	}
	shaper := e.shaper(req)

	timeTbl, err := e.client.InterestOverTime(ctx, params)
	if err != nil {
		return nil, err
	}
	points, err := shaper.ShapeTimeSeries(timeTbl)
	if err != nil {
		return nil, err
	}

	result := &AnalyzeResult{
		Query:      params,
		TimeSeries: points,
	}

	if regionTbl, err := e.client.InterestByRegion(ctx, params); err != nil {
		e.log.WithError(err).Warn("Region ranking unavailable")
	} else if ranked, err := shaper.ShapeRegions(regionTbl, req.Keyword); err != nil {
		if !trends.IsEmptyResult(err) {
			e.log.WithError(err).Warn("Region shaping failed")
		}
	} else {
		result.Regions = ranked
	}

	if related, err := e.client.RelatedQueries(ctx, params); err != nil {
		e.log.WithError(err).Warn("Related queries unavailable")
	} else {
		result.Related = related
	}

	return result, nil
}

func (e *explorer) shaper(req AnalyzeRequest) *trends.Shaper {
	return trends.NewShaper(trends.ShaperOptions{
		TopN:        req.TopN,
		MinInterest: req.MinInterest,
	})
}
