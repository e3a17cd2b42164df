package formatting

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// ParseNumber parses the text payload of a numeric tag
func ParseNumber(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// Number formats n with comma thousands separators, e.g. 1234567 -> "1,234,567"
func Number(n float64) string {
	return humanize.Commaf(n)
}

// GrammarNumber picks the word form for count n. none is used for zero when
// it is non-empty; otherwise one takes singular and everything else plural.
func GrammarNumber(n float64, singular, plural, none string) string {
	switch {
	case n == 0 && none != "":
		return none
	case n == 1:
		return singular
	default:
		return plural
	}
}
