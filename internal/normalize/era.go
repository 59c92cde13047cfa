package normalize

import (
	"strconv"
	"strings"
)

// era holds the additive offset for one Japanese calendar era.
// Gregorian year = base + era-relative year.
type era struct {
	prefix string
	base   int
}

// eras is the closed set of recognized era prefixes. Longer (kanji)
// prefixes are listed first so they match before single letters.
var eras = []era{
	{"令和", 2018},
	{"平成", 1988},
	{"昭和", 1925},
	{"大正", 1911},
	{"明治", 1867},
	{"R", 2018},
	{"H", 1988},
	{"S", 1925},
	{"T", 1911},
	{"M", 1867},
}

// Year converts an era-year label like "H6", "令和6年" or "S50" into a
// Gregorian year. Labels without a recognized era prefix are parsed as
// plain integers. Unparseable input returns (0, false); it is never an
// error, downstream consumers drop or flag records without a year.
func Year(label string) (int, bool) {
	s := strings.TrimSpace(FoldWidth(label))
	if s == "" {
		return 0, false
	}

	for _, e := range eras {
		if !strings.HasPrefix(s, e.prefix) {
			continue
		}
		rel, ok := eraRelativeYear(s[len(e.prefix):])
		if !ok {
			return 0, false
		}
		return e.base + rel, true
	}

	// No era prefix: try a direct integer parse after stripping a
	// trailing year marker ("2023年").
	s = strings.TrimSuffix(s, "年")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// eraRelativeYear extracts the era-relative year number from the rest of
// the label. "元" denotes the first year of an era.
func eraRelativeYear(rest string) (int, bool) {
	rest = strings.TrimSpace(rest)
	rest = strings.TrimSuffix(rest, "年")
	if rest == "元" {
		return 1, true
	}

	// Keep digits only; source labels carry stray punctuation like "R.6".
	var digits strings.Builder
	for _, r := range rest {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return n, true
}
