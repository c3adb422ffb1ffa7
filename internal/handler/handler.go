package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"trendboard/internal/config"
	"trendboard/internal/service"
	"trendboard/pkg/geo"
	"trendboard/pkg/provider"
	"trendboard/pkg/trends"
)

// SettingsSource yields the currently active configuration. Reading it
// per request keeps shaper defaults live across config reloads.
// config.Manager satisfies it.
type SettingsSource interface {
	GetConfig() *config.Config
}

// Handler exposes the dashboard API over HTTP.
type Handler struct {
	explorer service.Explorer
	resolver *geo.Resolver
	stats    provider.StatsReporter
	settings SettingsSource
}

func NewHandler(explorer service.Explorer, resolver *geo.Resolver, stats provider.StatsReporter, settings SettingsSource) *Handler {
	return &Handler{
		explorer: explorer,
		resolver: resolver,
		stats:    stats,
		settings: settings,
	}
}

// Register mounts all routes on app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", h.health)
	app.Get("/", h.index)

	api := app.Group("/api/v1")
	api.Get("/timeframes", h.timeframes)
	api.Get("/analyze", h.analyze)
	api.Get("/interest/time", h.interestOverTime)
	api.Get("/interest/time.csv", h.interestOverTimeCSV)
	api.Get("/interest/regions", h.topRegions)
	api.Get("/related", h.relatedQueries)
	api.Get("/stats", h.providerStats)
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) providerStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   h.stats.Stats(),
	})
}

func (h *Handler) timeframes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   trends.Timeframes(),
	})
}

func (h *Handler) analyze(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return h.respondError(c, err)
	}

	result, err := h.explorer.Analyze(c.UserContext(), req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": result})
}

func (h *Handler) interestOverTime(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return h.respondError(c, err)
	}

	points, err := h.explorer.InterestOverTime(c.UserContext(), req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": points})
}

func (h *Handler) topRegions(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return h.respondError(c, err)
	}

	ranked, err := h.explorer.TopRegions(c.UserContext(), req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": ranked})
}

func (h *Handler) relatedQueries(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return h.respondError(c, err)
	}

	related, err := h.explorer.RelatedQueries(c.UserContext(), req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": related})
}

// parseRequest reads the shared query parameters. Geography names are
// resolved to provider codes here so the pipeline only ever sees codes
// or the worldwide sentinel.
func (h *Handler) parseRequest(c *fiber.Ctx) (service.AnalyzeRequest, error) {
	var keywords []string
	for _, kw := range strings.Split(c.Query("keywords"), ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}

	geoCode, ok := h.resolver.Resolve(c.Query("geo"))
	if !ok {
		return service.AnalyzeRequest{}, &trends.ValidationError{
			Field:  "geo",
			Reason: "unknown country code or name",
		}
	}

	timeframe := c.Query("timeframe", trends.TimeframePast30Days)
	defaults := h.settings.GetConfig().Shaper

	return service.AnalyzeRequest{
		Keywords:    keywords,
		Geo:         geoCode,
		Timeframe:   timeframe,
		Keyword:     strings.TrimSpace(c.Query("keyword")),
		TopN:        c.QueryInt("top_n", defaults.TopN),
		MinInterest: c.QueryInt("min_interest", defaults.MinInterest),
	}, nil
}

type errorBody struct {
	Status string `json:"status"`
	Code   string `json:"code"`
	Error  string `json:"error"`
}

// respondError maps the error taxonomy onto HTTP statuses. The three
// kinds stay distinguishable so the page can render "fix your input",
// "no data exists" and "try again" states separately.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	switch {
	case trends.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{
			Status: "error", Code: "invalid_query", Error: err.Error(),
		})
	case trends.IsEmptyResult(err):
		return c.Status(fiber.StatusNotFound).JSON(errorBody{
			Status: "error", Code: "empty_result", Error: err.Error(),
		})
	case trends.IsTransport(err):
		return c.Status(fiber.StatusBadGateway).JSON(errorBody{
			Status: "error", Code: "transport_error", Error: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody{
			Status: "error", Code: "internal_error", Error: err.Error(),
		})
	}
}
