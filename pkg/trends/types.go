package trends

import "time"

// MaxKeywords is the upstream provider's hard limit per query.
const MaxKeywords = 5

// PartialColumn is the provider's marker column flagging data points
// that may still be revised.
const PartialColumn = "isPartial"

// QueryParameters is an immutable request descriptor for the upstream
// provider. Build one per user action with BuildQuery.
type QueryParameters struct {
	Keywords  []string `json:"keywords"`
	Geo       string   `json:"geo"` // empty means worldwide
	Timeframe string   `json:"timeframe"`
}

// InterestTable is the raw interest-over-time table as returned by the
// provider: chronological rows, one numeric column per keyword, plus an
// optional partial-data marker column.
type InterestTable struct {
	Columns []string
	Rows    []InterestTableRow
}

// InterestTableRow is a single raw time-series row. A nil cell value
// represents a null in the provider response.
type InterestTableRow struct {
	Date  time.Time
	Cells map[string]*int
}

// RegionTable is the raw region-interest table: one row per region,
// one numeric column per keyword.
type RegionTable struct {
	Keywords []string
	Rows     []RegionTableRow
}

// RegionTableRow is a single raw region row.
type RegionTableRow struct {
	Region string
	Cells  map[string]*int
}

// InterestPoint is a display-ready time-series row. Values holds one
// entry per keyword that had a non-null cell; the provider's partial
// marker is separated into Partial.
type InterestPoint struct {
	Date    time.Time      `json:"date"`
	Values  map[string]int `json:"values"`
	Partial bool           `json:"partial"`
}

// RegionInterest is a display-ready ranked-region row.
type RegionInterest struct {
	Region string `json:"region"`
	Value  int    `json:"value"`
}

// RelatedQuery is one entry of the provider's related-queries ranking.
type RelatedQuery struct {
	Query string `json:"query"`
	Value int    `json:"value"`
}
