package normalize

import (
	"strconv"
	"strings"
)

// Number coerces a raw cell value into a float64. Thousands separators
// (ASCII and full-width commas), whitespace and full-width digits are
// folded before parsing. Empty cells, placeholder dashes and non-numeric
// residue like "不詳" return (0, false); rows carrying such cells are
// retained with a null value so totals and unknowns stay auditable.
//
// Negative values pass through: count columns are non-negative in the
// source data, but year-over-year delta columns legitimately go below
// zero, so coercion does not enforce a sign.
func Number(raw string) (float64, bool) {
	s := FoldWidth(raw)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || s == "-" || s == "−" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
