package trends

import (
	"fmt"
	"strings"
)

// BuildQuery validates user parameters and produces a QueryParameters
// value. Keywords are trimmed of whitespace, empties dropped, and
// duplicates removed keeping the first occurrence. Geo is passed
// through verbatim; geography validation belongs to the provider.
func BuildQuery(keywords []string, geo, timeframe string) (QueryParameters, error) {
	if len(keywords) > MaxKeywords {
		return QueryParameters{}, &ValidationError{
			Field:  "keywords",
			Reason: fmt.Sprintf("at most %d keywords allowed, got %d", MaxKeywords, len(keywords)),
		}
	}

	cleaned := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		cleaned = append(cleaned, kw)
	}

	if len(cleaned) == 0 {
		return QueryParameters{}, &ValidationError{
			Field:  "keywords",
			Reason: "at least one non-empty keyword required",
		}
	}

	if !ValidTimeframe(timeframe) {
		return QueryParameters{}, &ValidationError{
			Field:  "timeframe",
			Reason: fmt.Sprintf("unknown token %q", timeframe),
		}
	}

	return QueryParameters{
		Keywords:  cleaned,
		Geo:       geo,
		Timeframe: timeframe,
	}, nil
}
