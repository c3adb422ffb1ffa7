package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"trendboard/pkg/trends"
)

// interestOverTimeCSV mirrors the interest/time endpoint as a CSV
// download, one column per keyword in query order plus the partial
// flag.
func (h *Handler) interestOverTimeCSV(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return h.respondError(c, err)
	}

	// Canonical keyword order for the header; BuildQuery is pure so
	// running it again here is safe.
	params, err := trends.BuildQuery(req.Keywords, req.Geo, req.Timeframe)
	if err != nil {
		return h.respondError(c, err)
	}

	points, err := h.explorer.InterestOverTime(c.UserContext(), req)
	if err != nil {
		return h.respondError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(params.Keywords)+2)
	header = append(header, "date")
	header = append(header, params.Keywords...)
	header = append(header, "partial")
	if err := w.Write(header); err != nil {
		return h.respondError(c, err)
	}

	for _, point := range points {
		record := make([]string, 0, len(header))
		record = append(record, point.Date.Format("2006-01-02"))
		for _, kw := range params.Keywords {
			if v, ok := point.Values[kw]; ok {
				record = append(record, strconv.Itoa(v))
			} else {
				record = append(record, "")
			}
		}
		record = append(record, strconv.FormatBool(point.Partial))
		if err := w.Write(record); err != nil {
			return h.respondError(c, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return h.respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="interest_over_time.csv"`)
	return c.Send(buf.Bytes())
}
