package handler

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed assets/index.html
var indexPage []byte

func (h *Handler) index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(indexPage)
}
