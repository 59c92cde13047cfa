package normalize

import "testing"

func TestYear_EraLabels(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"S50", 1975},
		{"H6", 1994},
		{"H31", 2019},
		{"R6", 2024},
		{"R元", 2019},
		{"令和6年", 2024},
		{"平成6年", 1994},
		{"昭和50年", 1975},
		{"大正10年", 1921},
		{"明治33年", 1900},
		{"R.6", 2024},
		{" H6 ", 1994},
		{"Ｈ６", 1994}, // full-width
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := Year(tt.label)
			if !ok {
				t.Fatalf("Year(%q) not parseable, want %d", tt.label, tt.want)
			}
			if got != tt.want {
				t.Errorf("Year(%q) = %d, want %d", tt.label, got, tt.want)
			}
		})
	}
}

func TestYear_DirectParse(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"2023", 2023},
		{"2023年", 2023},
		{"１９９５", 1995},
	}

	for _, tt := range tests {
		got, ok := Year(tt.label)
		if !ok || got != tt.want {
			t.Errorf("Year(%q) = %d, %v, want %d, true", tt.label, got, ok, tt.want)
		}
	}
}

func TestYear_Unparseable(t *testing.T) {
	for _, label := range []string{"", "不詳", "X6", "年", "abc"} {
		if got, ok := Year(label); ok {
			t.Errorf("Year(%q) = %d, expected no year", label, got)
		}
	}
}

func TestYear_EraWithoutNumber(t *testing.T) {
	if got, ok := Year("H"); ok {
		t.Errorf("Year(\"H\") = %d, expected no year for a bare era prefix", got)
	}
}
