package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"trendboard/pkg/logger"
)

// NewApp builds the fiber application with middleware and all routes
// mounted.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "trendboard",
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Accept,Content-Type",
	}))
	app.Use(accessLog())

	h.Register(app)
	return app
}

// accessLog writes one structured line per request.
func accessLog() fiber.Handler {
	log := logger.GetLogger().WithField("component", "http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.WithFields(map[string]interface{}{
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      c.Response().StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  c.Locals(requestid.ConfigDefault.ContextKey),
		}).Info("Request handled")
		return err
	}
}
