package trends

import (
	"errors"
	"testing"
	"time"
)

func intp(v int) *int { return &v }

func sampleInterestTable() InterestTable {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return InterestTable{
		Columns: []string{"cats", "dogs", PartialColumn},
		Rows: []InterestTableRow{
			{Date: base, Cells: map[string]*int{"cats": intp(40), "dogs": intp(60), PartialColumn: intp(0)}},
			{Date: base.AddDate(0, 0, 1), Cells: map[string]*int{"cats": intp(55), "dogs": intp(45), PartialColumn: intp(0)}},
			{Date: base.AddDate(0, 0, 2), Cells: map[string]*int{"cats": nil, "dogs": nil}},
			{Date: base.AddDate(0, 0, 3), Cells: map[string]*int{"cats": intp(70), "dogs": intp(30), PartialColumn: intp(1)}},
		},
	}
}

func TestShapeTimeSeries_PreservesOrderAndSplitsPartial(t *testing.T) {
	shaper := NewShaper(ShaperOptions{})
	tbl := sampleInterestTable()

	points, err := shaper.ShapeTimeSeries(tbl)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(points) != len(tbl.Rows) {
		t.Fatalf("Expected %d points, got: %d", len(tbl.Rows), len(points))
	}

	for i, point := range points {
		if !point.Date.Equal(tbl.Rows[i].Date) {
			t.Errorf("Row %d: expected date %v, got: %v", i, tbl.Rows[i].Date, point.Date)
		}
		if _, leaked := point.Values[PartialColumn]; leaked {
			t.Errorf("Row %d: partial marker leaked into values", i)
		}
	}

	if points[0].Partial || points[1].Partial {
		t.Error("Expected first two rows not partial")
	}
	if !points[3].Partial {
		t.Error("Expected last row partial")
	}
	if points[0].Values["cats"] != 40 || points[0].Values["dogs"] != 60 {
		t.Errorf("Row 0: unexpected values: %v", points[0].Values)
	}
}

func TestShapeTimeSeries_AllNullRowPassesThrough(t *testing.T) {
	shaper := NewShaper(ShaperOptions{})
	points, err := shaper.ShapeTimeSeries(sampleInterestTable())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(points[2].Values) != 0 {
		t.Errorf("Expected all-null row to keep empty values, got: %v", points[2].Values)
	}
}

func TestShapeTimeSeries_EmptyTable(t *testing.T) {
	shaper := NewShaper(ShaperOptions{})
	_, err := shaper.ShapeTimeSeries(InterestTable{})
	if err == nil {
		t.Fatal("Expected error for empty table, got nil")
	}
	var ee *EmptyResultError
	if !errors.As(err, &ee) {
		t.Errorf("Expected EmptyResultError, got: %T", err)
	}
}

func TestShapeTimeSeries_MissingKeywordColumns(t *testing.T) {
	shaper := NewShaper(ShaperOptions{})
	tbl := InterestTable{
		Columns: []string{PartialColumn},
		Rows: []InterestTableRow{
			{Date: time.Now(), Cells: map[string]*int{PartialColumn: intp(0)}},
		},
	}
	_, err := shaper.ShapeTimeSeries(tbl)
	if !IsEmptyResult(err) {
		t.Errorf("Expected EmptyResultError for marker-only table, got: %v", err)
	}
}

func sampleRegionTable() RegionTable {
	return RegionTable{
		Keywords: []string{"cats"},
		Rows: []RegionTableRow{
			{Region: "California", Cells: map[string]*int{"cats": intp(80)}},
			{Region: "Texas", Cells: map[string]*int{"cats": intp(0)}},
			{Region: "Nevada", Cells: map[string]*int{"cats": intp(45)}},
		},
	}
}

func TestShapeRegions_DropsZeroAndSortsDescending(t *testing.T) {
	shaper := NewShaper(ShaperOptions{})
	ranked, err := shaper.ShapeRegions(sampleRegionTable(), "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(ranked) != 2 {
		t.Fatalf("Expected 2 regions, got: %d", len(ranked))
	}
	if ranked[0].Region != "California" || ranked[0].Value != 80 {
		t.Errorf("Expected California 80 first, got: %+v", ranked[0])
	}
	if ranked[1].Region != "Nevada" || ranked[1].Value != 45 {
		t.Errorf("Expected Nevada 45 second, got: %+v", ranked[1])
	}
}

func TestShapeRegions_NullValuesDropped(t *testing.T) {
	shaper := NewShaper(ShaperOptions{})
	tbl := RegionTable{
		Keywords: []string{"cats"},
		Rows: []RegionTableRow{
			{Region: "Oregon", Cells: map[string]*int{"cats": nil}},
			{Region: "Idaho", Cells: map[string]*int{"cats": intp(10)}},
		},
	}
	ranked, err := shaper.ShapeRegions(tbl, "cats")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	for _, row := range ranked {
		if row.Value == 0 {
			t.Errorf("Expected no zero-value rows, got: %+v", row)
		}
	}
	if len(ranked) != 1 || ranked[0].Region != "Idaho" {
		t.Errorf("Expected only Idaho, got: %v", ranked)
	}
}

func TestShapeRegions_StableTieBreak(t *testing.T) {
	shaper := NewShaper(ShaperOptions{})
	tbl := RegionTable{
		Keywords: []string{"cats"},
		Rows: []RegionTableRow{
			{Region: "Alpha", Cells: map[string]*int{"cats": intp(50)}},
			{Region: "Beta", Cells: map[string]*int{"cats": intp(50)}},
			{Region: "Gamma", Cells: map[string]*int{"cats": intp(90)}},
			{Region: "Delta", Cells: map[string]*int{"cats": intp(50)}},
		},
	}
	ranked, err := shaper.ShapeRegions(tbl, "cats")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := []string{"Gamma", "Alpha", "Beta", "Delta"}
	for i, region := range want {
		if ranked[i].Region != region {
			t.Fatalf("Expected order %v, got position %d = %s", want, i, ranked[i].Region)
		}
	}
}

func TestShapeRegions_Idempotent(t *testing.T) {
	shaper := NewShaper(ShaperOptions{})
	once, err := shaper.ShapeRegions(sampleRegionTable(), "cats")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Rebuild a table from the shaped output and shape again.
	rebuilt := RegionTable{Keywords: []string{"cats"}}
	for _, row := range once {
		v := row.Value
		rebuilt.Rows = append(rebuilt.Rows, RegionTableRow{
			Region: row.Region,
			Cells:  map[string]*int{"cats": &v},
		})
	}
	twice, err := shaper.ShapeRegions(rebuilt, "cats")
	if err != nil {
		t.Fatalf("Expected no error on second pass, got: %v", err)
	}

	if len(once) != len(twice) {
		t.Fatalf("Expected same length, got: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("Row %d differs after re-shaping: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestShapeRegions_OutputSortedDescending(t *testing.T) {
	shaper := NewShaper(ShaperOptions{})
	ranked, err := shaper.ShapeRegions(sampleRegionTable(), "cats")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Value < ranked[i].Value {
			t.Errorf("Expected descending order, got %d before %d", ranked[i-1].Value, ranked[i].Value)
		}
	}
}

func TestShapeRegions_TopNTruncation(t *testing.T) {
	shaper := NewShaper(ShaperOptions{TopN: 1})
	ranked, err := shaper.ShapeRegions(sampleRegionTable(), "cats")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("Expected 1 region, got: %d", len(ranked))
	}
	if ranked[0].Region != "California" {
		t.Errorf("Expected California, got: %s", ranked[0].Region)
	}
}

func TestShapeRegions_MinInterestThreshold(t *testing.T) {
	shaper := NewShaper(ShaperOptions{MinInterest: 50})
	ranked, err := shaper.ShapeRegions(sampleRegionTable(), "cats")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(ranked) != 1 || ranked[0].Region != "California" {
		t.Errorf("Expected only California above threshold, got: %v", ranked)
	}
}

func TestShapeRegions_EmptyTable(t *testing.T) {
	shaper := NewShaper(ShaperOptions{})
	_, err := shaper.ShapeRegions(RegionTable{}, "cats")
	if !IsEmptyResult(err) {
		t.Errorf("Expected EmptyResultError, got: %v", err)
	}
}

func TestShapeRegions_MissingColumn(t *testing.T) {
	shaper := NewShaper(ShaperOptions{})
	_, err := shaper.ShapeRegions(sampleRegionTable(), "dogs")
	if !IsEmptyResult(err) {
		t.Errorf("Expected EmptyResultError for missing column, got: %v", err)
	}
}
