package normalize

// Bracket is a canonical age-range label used as the grouping key for
// demographic and economic calculations.
type Bracket string

const (
	Bracket0to9   Bracket = "0-9"
	Bracket10to19 Bracket = "10-19"
	Bracket20to29 Bracket = "20-29"
	Bracket30to39 Bracket = "30-39"
	Bracket40to49 Bracket = "40-49"
	Bracket50to59 Bracket = "50-59"
	Bracket60to69 Bracket = "60-69"
	Bracket70to79 Bracket = "70-79"
	Bracket80Plus Bracket = "80+"

	// BracketUnder19 is the coarse 0-19 bucket used by the long-running
	// annual series instead of the two decade brackets.
	BracketUnder19 Bracket = "0-19"

	BracketUnknown Bracket = "Unknown"
	BracketTotal   Bracket = "Total"
)

// CanonicalBrackets lists every bracket in reporting order. Aggregation
// output is sorted by this order so runs are reproducible.
var CanonicalBrackets = []Bracket{
	Bracket0to9,
	Bracket10to19,
	BracketUnder19,
	Bracket20to29,
	Bracket30to39,
	Bracket40to49,
	Bracket50to59,
	Bracket60to69,
	Bracket70to79,
	Bracket80Plus,
	BracketUnknown,
	BracketTotal,
}

// bracketAliases maps every raw label variant seen in the source tables
// to its canonical bracket. Keys are the width-folded spellings; FoldWidth
// collapses full-width tildes, wave dashes and embedded spaces before
// lookup, so "１０～１９歳" and "10~19歳" land on the same key.
var bracketAliases = map[string]Bracket{
	"0~9歳":   Bracket0to9,
	"10~19歳": Bracket10to19,
	"20~29歳": Bracket20to29,
	"30~39歳": Bracket30to39,
	"40~49歳": Bracket40to49,
	"50~59歳": Bracket50to59,
	"60~69歳": Bracket60to69,
	"70~79歳": Bracket70to79,
	"80歳以上":  Bracket80Plus,
	"80歳~":   Bracket80Plus,
	"~19歳":   BracketUnder19,
	"19歳以下":  BracketUnder19,
	"不詳":     BracketUnknown,
	"総数":     BracketTotal,
	"合計":     BracketTotal,
	"計":      BracketTotal,
}

// BracketOf maps a raw age-range label to its canonical bracket. The
// mapping is total over the known source vocabulary; anything else
// returns ("", false) and must be excluded from aggregates rather than
// coerced to zero.
func BracketOf(label string) (Bracket, bool) {
	b, ok := bracketAliases[FoldWidth(label)]
	return b, ok
}

// bracketOrder is the position of each bracket in CanonicalBrackets.
var bracketOrder = func() map[Bracket]int {
	m := make(map[Bracket]int, len(CanonicalBrackets))
	for i, b := range CanonicalBrackets {
		m[b] = i
	}
	return m
}()

// BracketLess orders brackets canonically; unknown labels sort last.
func BracketLess(a, b Bracket) bool {
	ia, aok := bracketOrder[a]
	ib, bok := bracketOrder[b]
	if aok != bok {
		return aok
	}
	if !aok {
		return a < b
	}
	return ia < ib
}
