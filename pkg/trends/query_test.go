package trends

import (
	"errors"
	"testing"
)

func TestBuildQuery_TrimAndDedup(t *testing.T) {
	params, err := BuildQuery([]string{"cats", "dogs", "cats"}, "US", TimeframePast7Days)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(params.Keywords) != 2 {
		t.Fatalf("Expected 2 keywords, got: %d", len(params.Keywords))
	}
	if params.Keywords[0] != "cats" || params.Keywords[1] != "dogs" {
		t.Errorf("Expected [cats dogs], got: %v", params.Keywords)
	}
	if params.Geo != "US" {
		t.Errorf("Expected geo 'US', got: %s", params.Geo)
	}
	if params.Timeframe != "past 7 days" {
		t.Errorf("Expected timeframe 'past 7 days', got: %s", params.Timeframe)
	}
}

func TestBuildQuery_TrimsWhitespace(t *testing.T) {
	params, err := BuildQuery([]string{"  cats ", "\tdogs\n"}, "", TimeframePastDay)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if params.Keywords[0] != "cats" || params.Keywords[1] != "dogs" {
		t.Errorf("Expected trimmed keywords, got: %v", params.Keywords)
	}
}

func TestBuildQuery_EmptyKeywords(t *testing.T) {
	cases := [][]string{
		{},
		{""},
		{"   ", "\t"},
	}
	for _, keywords := range cases {
		_, err := BuildQuery(keywords, "", TimeframeAll)
		if err == nil {
			t.Fatalf("Expected validation error for %v, got nil", keywords)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("Expected ValidationError for %v, got: %T", keywords, err)
		}
	}
}

func TestBuildQuery_TooManyKeywords(t *testing.T) {
	// Six entries pre-dedup must fail even though only one survives dedup.
	keywords := []string{"go", "go", "go", "go", "go", "go"}
	_, err := BuildQuery(keywords, "", TimeframeAll)
	if err == nil {
		t.Fatal("Expected error for 6 keywords, got nil")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected ValidationError, got: %T", err)
	}
	if ve.Field != "keywords" {
		t.Errorf("Expected field 'keywords', got: %s", ve.Field)
	}
}

func TestBuildQuery_MaxKeywordsAccepted(t *testing.T) {
	keywords := []string{"a", "b", "c", "d", "e"}
	params, err := BuildQuery(keywords, "DE", TimeframePast5Years)
	if err != nil {
		t.Fatalf("Expected no error for 5 keywords, got: %v", err)
	}
	if len(params.Keywords) != 5 {
		t.Errorf("Expected 5 keywords, got: %d", len(params.Keywords))
	}
}

func TestBuildQuery_UnknownTimeframe(t *testing.T) {
	_, err := BuildQuery([]string{"cats"}, "", "last fortnight")
	if err == nil {
		t.Fatal("Expected error for unknown timeframe, got nil")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected ValidationError, got: %T", err)
	}
	if ve.Field != "timeframe" {
		t.Errorf("Expected field 'timeframe', got: %s", ve.Field)
	}
}

func TestBuildQuery_AllTimeframeTokens(t *testing.T) {
	for _, token := range Timeframes() {
		if _, err := BuildQuery([]string{"cats"}, "", token); err != nil {
			t.Errorf("Expected token %q to be accepted, got: %v", token, err)
		}
		if _, ok := WireTimeframe(token); !ok {
			t.Errorf("Expected wire mapping for token %q", token)
		}
	}
}

func TestBuildQuery_GeoPassthrough(t *testing.T) {
	params, err := BuildQuery([]string{"cats"}, "worldwide nonsense", TimeframeAll)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if params.Geo != "worldwide nonsense" {
		t.Errorf("Expected geo passed through verbatim, got: %s", params.Geo)
	}
}
