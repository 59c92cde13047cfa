package normalize

import "testing"

// rawBracketVariants enumerates every raw age-bracket spelling observed in
// the source tables. BracketOf must be total over this vocabulary.
var rawBracketVariants = map[string]Bracket{
	"0～9歳":     Bracket0to9,
	"10～19歳":   Bracket10to19,
	"20～29歳":   Bracket20to29,
	"30～39歳":   Bracket30to39,
	"40～49歳":   Bracket40to49,
	"50～59歳":   Bracket50to59,
	"60～69歳":   Bracket60to69,
	"70～79歳":   Bracket70to79,
	"80歳以上":    Bracket80Plus,
	"80歳～":     Bracket80Plus,
	"～19歳":     BracketUnder19,
	"19歳以下":    BracketUnder19,
	"10〜19歳":   Bracket10to19, // wave dash U+301C
	"10~19歳":   Bracket10to19, // ASCII tilde
	"１０～１９歳":   Bracket10to19, // full-width digits
	"不詳":       BracketUnknown,
	"不 詳":      BracketUnknown,
	"不　詳": BracketUnknown,
	"総数":       BracketTotal,
	"合計":       BracketTotal,
	"計":        BracketTotal,
}

func TestBracketOf_TotalOverVocabulary(t *testing.T) {
	for raw, want := range rawBracketVariants {
		got, ok := BracketOf(raw)
		if !ok {
			t.Errorf("BracketOf(%q) unrecognized, want %q", raw, want)
			continue
		}
		if got != want {
			t.Errorf("BracketOf(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestBracketOf_Unknown(t *testing.T) {
	for _, raw := range []string{"", "年", "100歳", "20代", "合 計 額"} {
		if got, ok := BracketOf(raw); ok {
			t.Errorf("BracketOf(%q) = %q, expected no match", raw, got)
		}
	}
}

func TestBracketLess_CanonicalOrder(t *testing.T) {
	for i := 1; i < len(CanonicalBrackets); i++ {
		a, b := CanonicalBrackets[i-1], CanonicalBrackets[i]
		if !BracketLess(a, b) {
			t.Errorf("expected %q < %q", a, b)
		}
		if BracketLess(b, a) {
			t.Errorf("expected !(%q < %q)", b, a)
		}
	}

	// Non-canonical labels sort after canonical ones.
	if !BracketLess(BracketTotal, Bracket("zzz")) {
		t.Error("expected canonical bracket to sort before unknown label")
	}
}
