package answer

import (
	"strings"

	"github.com/cbodonnell/flagmaster/pkg/countries"
)

// Evaluate reports whether text names the country. Matching is exact after
// lower-casing both sides; whitespace and diacritics are significant.
// Callers reject empty submissions before calling Evaluate.
func Evaluate(country countries.Country, text string) bool {
	guess := strings.ToLower(text)
	if guess == strings.ToLower(country.Name) {
		return true
	}
	for _, alt := range country.AlternativeNames {
		if guess == strings.ToLower(alt) {
			return true
		}
	}
	return false
}
