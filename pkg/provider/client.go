package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/valyala/fasthttp"

	"trendboard/pkg/logger"
	"trendboard/pkg/trends"
)

// HTTPClient talks to the upstream provider over HTTP. It satisfies
// both Client and StatsReporter.
type HTTPClient struct {
	config Config
	http   *fasthttp.Client
	retry  *retrier
	log    *logger.Logger

	totalRequests  uint64
	failedRequests uint64
}

// NewClient creates an HTTP provider client with retry and connection
// limits from config.
func NewClient(config Config) *HTTPClient {
	return &HTTPClient{
		config: config,
		http: &fasthttp.Client{
			MaxConnsPerHost: config.MaxConnsPerHost,
			ReadTimeout:     config.RequestTimeout,
			WriteTimeout:    config.RequestTimeout,
		},
		retry: newRetrier(config.MaxRetries, config.RetryDelay),
		log:   logger.GetLogger().WithField("component", "provider_client"),
	}
}

func (c *HTTPClient) InterestOverTime(ctx context.Context, params trends.QueryParameters) (trends.InterestTable, error) {
	var tbl trends.InterestTable
	err := c.retry.Execute(ctx, func() error {
		body, err := c.doGet(ctx, "/interest-over-time", params)
		if err != nil {
			return err
		}
		tbl, err = decodeTimeline(body, params.Keywords)
		return err
	})
	if err != nil {
		return trends.InterestTable{}, err
	}
	c.log.WithFields(map[string]interface{}{
		"keywords": len(params.Keywords),
		"rows":     len(tbl.Rows),
	}).Debug("Interest over time fetched")
	return tbl, nil
}

func (c *HTTPClient) InterestByRegion(ctx context.Context, params trends.QueryParameters) (trends.RegionTable, error) {
	var tbl trends.RegionTable
	err := c.retry.Execute(ctx, func() error {
		body, err := c.doGet(ctx, "/interest-by-region", params)
		if err != nil {
			return err
		}
		tbl, err = decodeRegions(body, params.Keywords)
		return err
	})
	if err != nil {
		return trends.RegionTable{}, err
	}
	c.log.WithFields(map[string]interface{}{
		"keywords": len(params.Keywords),
		"rows":     len(tbl.Rows),
	}).Debug("Interest by region fetched")
	return tbl, nil
}

func (c *HTTPClient) RelatedQueries(ctx context.Context, params trends.QueryParameters) ([]trends.RelatedQuery, error) {
	var related []trends.RelatedQuery
	err := c.retry.Execute(ctx, func() error {
		body, err := c.doGet(ctx, "/related-queries", params)
		if err != nil {
			return err
		}
		related, err = decodeRelated(body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return related, nil
}

// doGet performs one GET against the provider. Every failure mode here
// is a transport outcome; decoding problems are classified by the
// decode layer.
func (c *HTTPClient) doGet(ctx context.Context, path string, params trends.QueryParameters) ([]byte, error) {
	atomic.AddUint64(&c.totalRequests, 1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wire, ok := trends.WireTimeframe(params.Timeframe)
	if !ok {
		// BuildQuery guarantees the token; reject rather than guess.
		return nil, &trends.ValidationError{Field: "timeframe", Reason: fmt.Sprintf("unknown token %q", params.Timeframe)}
	}

	query := url.Values{}
	query.Set("keywords", strings.Join(params.Keywords, ","))
	query.Set("timeframe", wire)
	if params.Geo != "" {
		query.Set("geo", params.Geo)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(strings.TrimSuffix(c.config.BaseURL, "/") + path + "?" + query.Encode())
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("User-Agent", "trendboard/1.0")
	req.Header.Set("Accept", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	if err := c.http.DoTimeout(req, resp, c.config.RequestTimeout); err != nil {
		atomic.AddUint64(&c.failedRequests, 1)
		return nil, &trends.TransportError{Op: strings.TrimPrefix(path, "/"), Err: err}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		atomic.AddUint64(&c.failedRequests, 1)
		return nil, &trends.TransportError{
			Op:  strings.TrimPrefix(path, "/"),
			Err: fmt.Errorf("status %d: %s", resp.StatusCode(), resp.Body()),
		}
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

// Stats returns request counters.
func (c *HTTPClient) Stats() Stats {
	return Stats{
		TotalRequests:  atomic.LoadUint64(&c.totalRequests),
		FailedRequests: atomic.LoadUint64(&c.failedRequests),
	}
}
