package provider

import (
	"encoding/json"
	"fmt"
	"time"

	"trendboard/pkg/trends"
)

// timelineResponse is the provider's interest-over-time payload. Value
// entries align with the requested keyword order; null entries mean the
// provider had no figure for that keyword at that date.
type timelineResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Timeline []struct {
		Date    string `json:"date"`
		Values  []*int `json:"values"`
		Partial bool   `json:"partial"`
	} `json:"timeline"`
}

// regionResponse is the provider's interest-by-region payload.
type regionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Regions []struct {
		Name   string `json:"name"`
		Values []*int `json:"values"`
	} `json:"regions"`
}

// relatedResponse is the provider's related-queries payload.
type relatedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Related []struct {
		Query string `json:"query"`
		Value int    `json:"value"`
	} `json:"related"`
}

func decodeTimeline(body []byte, keywords []string) (trends.InterestTable, error) {
	if len(body) == 0 {
		return trends.InterestTable{}, &trends.TransportError{
			Op:  "interest_over_time",
			Err: fmt.Errorf("empty response body"),
		}
	}

	var resp timelineResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return trends.InterestTable{}, &trends.TransportError{
			Op:  "interest_over_time",
			Err: fmt.Errorf("decode response: %w", err),
		}
	}
	if resp.Status != "success" {
		return trends.InterestTable{}, &trends.TransportError{
			Op:  "interest_over_time",
			Err: fmt.Errorf("provider status %q: %s", resp.Status, resp.Message),
		}
	}

	columns := make([]string, 0, len(keywords)+1)
	columns = append(columns, keywords...)
	columns = append(columns, trends.PartialColumn)

	tbl := trends.InterestTable{
		Columns: columns,
		Rows:    make([]trends.InterestTableRow, 0, len(resp.Timeline)),
	}
	for _, entry := range resp.Timeline {
		date, err := time.Parse(time.RFC3339, entry.Date)
		if err != nil {
			return trends.InterestTable{}, &trends.TransportError{
				Op:  "interest_over_time",
				Err: fmt.Errorf("parse date %q: %w", entry.Date, err),
			}
		}
		cells := make(map[string]*int, len(keywords)+1)
		for i, kw := range keywords {
			if i < len(entry.Values) {
				cells[kw] = entry.Values[i]
			} else {
				cells[kw] = nil
			}
		}
		partial := 0
		if entry.Partial {
			partial = 1
		}
		cells[trends.PartialColumn] = &partial
		tbl.Rows = append(tbl.Rows, trends.InterestTableRow{Date: date, Cells: cells})
	}
	return tbl, nil
}

func decodeRegions(body []byte, keywords []string) (trends.RegionTable, error) {
	if len(body) == 0 {
		return trends.RegionTable{}, &trends.TransportError{
			Op:  "interest_by_region",
			Err: fmt.Errorf("empty response body"),
		}
	}

	var resp regionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return trends.RegionTable{}, &trends.TransportError{
			Op:  "interest_by_region",
			Err: fmt.Errorf("decode response: %w", err),
		}
	}
	if resp.Status != "success" {
		return trends.RegionTable{}, &trends.TransportError{
			Op:  "interest_by_region",
			Err: fmt.Errorf("provider status %q: %s", resp.Status, resp.Message),
		}
	}

	tbl := trends.RegionTable{
		Keywords: append([]string(nil), keywords...),
		Rows:     make([]trends.RegionTableRow, 0, len(resp.Regions)),
	}
	for _, entry := range resp.Regions {
		if entry.Name == "" {
			continue
		}
		cells := make(map[string]*int, len(keywords))
		for i, kw := range keywords {
			if i < len(entry.Values) {
				cells[kw] = entry.Values[i]
			} else {
				cells[kw] = nil
			}
		}
		tbl.Rows = append(tbl.Rows, trends.RegionTableRow{Region: entry.Name, Cells: cells})
	}
	return tbl, nil
}

func decodeRelated(body []byte) ([]trends.RelatedQuery, error) {
	if len(body) == 0 {
		return nil, &trends.TransportError{
			Op:  "related_queries",
			Err: fmt.Errorf("empty response body"),
		}
	}

	var resp relatedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &trends.TransportError{
			Op:  "related_queries",
			Err: fmt.Errorf("decode response: %w", err),
		}
	}
	if resp.Status != "success" {
		return nil, &trends.TransportError{
			Op:  "related_queries",
			Err: fmt.Errorf("provider status %q: %s", resp.Status, resp.Message),
		}
	}

	related := make([]trends.RelatedQuery, 0, len(resp.Related))
	for _, entry := range resp.Related {
		if entry.Query == "" {
			continue
		}
		related = append(related, trends.RelatedQuery{Query: entry.Query, Value: entry.Value})
	}
	return related, nil
}
