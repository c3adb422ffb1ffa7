package trends

import "sort"

// ShaperOptions configures region ranking. TopN of 0 keeps all rows;
// MinInterest drops rows below the threshold (zero-value rows are
// always dropped).
type ShaperOptions struct {
	TopN        int
	MinInterest int
}

// Shaper turns raw provider tables into display-ready series. It holds
// only configuration; both operations are stateless and re-entrant.
type Shaper struct {
	opts ShaperOptions
}

func NewShaper(opts ShaperOptions) *Shaper {
	return &Shaper{opts: opts}
}

// ShapeTimeSeries converts a raw interest-over-time table into chart
// rows. Row order is preserved exactly as received; the provider's
// partial marker column is split out of the value mapping into the
// per-row Partial flag. Rows with all-null values pass through with an
// empty value mapping.
func (s *Shaper) ShapeTimeSeries(tbl InterestTable) ([]InterestPoint, error) {
	if len(tbl.Rows) == 0 {
		return nil, &EmptyResultError{Reason: "interest-over-time table has no rows"}
	}

	keywordColumns := 0
	for _, col := range tbl.Columns {
		if col != PartialColumn {
			keywordColumns++
		}
	}
	if keywordColumns == 0 {
		return nil, &EmptyResultError{Reason: "interest-over-time table has no keyword columns"}
	}

	points := make([]InterestPoint, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		point := InterestPoint{
			Date:   row.Date,
			Values: make(map[string]int, keywordColumns),
		}
		for _, col := range tbl.Columns {
			cell, ok := row.Cells[col]
			if !ok || cell == nil {
				continue
			}
			if col == PartialColumn {
				point.Partial = *cell != 0
				continue
			}
			point.Values[col] = *cell
		}
		points = append(points, point)
	}
	return points, nil
}

// ShapeRegions converts a raw region table into a ranking for a single
// keyword column (empty keyword selects the first column). Rows with
// null or zero values are removed, the rest sorted by value descending
// with the provider's relative order preserved on ties, then truncated
// to the configured top-N.
func (s *Shaper) ShapeRegions(tbl RegionTable, keyword string) ([]RegionInterest, error) {
	if len(tbl.Rows) == 0 {
		return nil, &EmptyResultError{Reason: "region table has no rows"}
	}
	if len(tbl.Keywords) == 0 {
		return nil, &EmptyResultError{Reason: "region table has no keyword columns"}
	}

	if keyword == "" {
		keyword = tbl.Keywords[0]
	}
	found := false
	for _, kw := range tbl.Keywords {
		if kw == keyword {
			found = true
			break
		}
	}
	if !found {
		return nil, &EmptyResultError{Reason: "region table is missing column " + keyword}
	}

	ranked := make([]RegionInterest, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		cell, ok := row.Cells[keyword]
		if !ok || cell == nil || *cell == 0 {
			continue
		}
		if *cell < s.opts.MinInterest {
			continue
		}
		ranked = append(ranked, RegionInterest{Region: row.Region, Value: *cell})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	if s.opts.TopN > 0 && len(ranked) > s.opts.TopN {
		ranked = ranked[:s.opts.TopN]
	}
	return ranked, nil
}
