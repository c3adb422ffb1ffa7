package trends

// Timeframe tokens accepted by BuildQuery. Each maps to the wire token
// the upstream provider understands; the mapping is applied by the
// provider client, never by the query builder.
const (
	TimeframePastHour     = "past hour"
	TimeframePast4Hours   = "past 4 hours"
	TimeframePastDay      = "past day"
	TimeframePast7Days    = "past 7 days"
	TimeframePast30Days   = "past 30 days"
	TimeframePast90Days   = "past 90 days"
	TimeframePast12Months = "past 12 months"
	TimeframePast5Years   = "past 5 years"
	TimeframeAll          = "all"
)

var timeframeWire = map[string]string{
	TimeframePastHour:     "now 1-H",
	TimeframePast4Hours:   "now 4-H",
	TimeframePastDay:      "now 1-d",
	TimeframePast7Days:    "now 7-d",
	TimeframePast30Days:   "today 1-m",
	TimeframePast90Days:   "today 3-m",
	TimeframePast12Months: "today 12-m",
	TimeframePast5Years:   "today 5-y",
	TimeframeAll:          "all",
}

var timeframeOrder = []string{
	TimeframePastHour,
	TimeframePast4Hours,
	TimeframePastDay,
	TimeframePast7Days,
	TimeframePast30Days,
	TimeframePast90Days,
	TimeframePast12Months,
	TimeframePast5Years,
	TimeframeAll,
}

// Timeframes returns the accepted tokens in display order.
func Timeframes() []string {
	out := make([]string, len(timeframeOrder))
	copy(out, timeframeOrder)
	return out
}

// ValidTimeframe reports whether token is one of the accepted tokens.
func ValidTimeframe(token string) bool {
	_, ok := timeframeWire[token]
	return ok
}

// WireTimeframe maps an accepted token to the provider's wire token.
func WireTimeframe(token string) (string, bool) {
	wire, ok := timeframeWire[token]
	return wire, ok
}
