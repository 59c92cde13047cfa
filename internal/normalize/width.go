package normalize

import (
	"strings"

	"golang.org/x/text/width"
)

// widthReplacer handles characters that width folding does not cover:
// the wave dash (U+301C) used interchangeably with the full-width tilde
// in government tables, and ideographic spaces inside labels like "不 詳".
var widthReplacer = strings.NewReplacer(
	"〜", "~", // wave dash
	"～", "~", // full-width tilde
	"　", "", // ideographic space
	" ", "",
	"\t", "",
)

// FoldWidth normalizes full-width ASCII variants (digits, commas, tildes)
// to their half-width forms and strips embedded whitespace, so that label
// lookups and numeric parsing see a single spelling.
func FoldWidth(s string) string {
	return widthReplacer.Replace(width.Fold.String(s))
}
