package geo

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Worldwide is the sentinel geography meaning no geographic restriction.
const Worldwide = ""

// Resolver maps user geography input to the two-letter region code the
// upstream provider accepts. It accepts ISO codes in any case as well
// as full English country names.
type Resolver struct {
	byName map[string]string
}

// NewResolver builds the resolver. The name index is derived from the
// CLDR English display names of every assigned country code, so
// "Germany" resolves the same way "DE" does.
func NewResolver() *Resolver {
	namer := display.English.Regions()
	byName := make(map[string]string, 256)

	for c1 := 'A'; c1 <= 'Z'; c1++ {
		for c2 := 'A'; c2 <= 'Z'; c2++ {
			code := string([]rune{c1, c2})
			region, err := language.ParseRegion(code)
			if err != nil || !region.IsCountry() {
				continue
			}
			name := namer.Name(region)
			if name == "" || name == code {
				continue
			}
			byName[strings.ToLower(name)] = region.String()
		}
	}

	return &Resolver{byName: byName}
}

// Resolve converts input to a provider geography code. Empty input and
// the literal "worldwide" resolve to the worldwide sentinel. The second
// return value is false when the input is neither a known code nor a
// known country name.
func (r *Resolver) Resolve(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "worldwide") {
		return Worldwide, true
	}

	if len(input) == 2 && isAlpha(input) {
		region, err := language.ParseRegion(input)
		if err != nil || !region.IsCountry() {
			return "", false
		}
		return region.String(), true
	}

	if code, ok := r.byName[strings.ToLower(input)]; ok {
		return code, true
	}
	return "", false
}

func isAlpha(s string) bool {
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
