package normalize

import "testing"

func TestGenderOf(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"自殺者_総数", GenderTotal},
		{"自殺者_男性", GenderMale},
		{"自殺者_女性", GenderFemale},
		{"男性", GenderMale},
		{"女性", GenderFemale},
	}

	for _, tt := range tests {
		got, ok := GenderOf(tt.raw)
		if !ok || got != tt.want {
			t.Errorf("GenderOf(%q) = %q, %v, want %q", tt.raw, got, ok, tt.want)
		}
	}

	if got, ok := GenderOf("年"); ok {
		t.Errorf("GenderOf(\"年\") = %q, expected no match", got)
	}
}

func TestCauseOf(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"健康問題", "Health issues"},
		{"経済・生活問題", "Economic / Life issues"},
		{"家庭問題", "Family issues"},
		{"勤務問題", "Work-related issues"},
		{"学校問題", "School issues"},
		{"交際問題（男女問題）", "Relationship issues"},
		{"男女問題", "Relationship issues"},
		{"その他", "Other"},
	}

	for _, tt := range tests {
		got, ok := CauseOf(tt.raw)
		if !ok || got != tt.want {
			t.Errorf("CauseOf(%q) = %q, %v, want %q", tt.raw, got, ok, tt.want)
		}
	}

	if got, ok := CauseOf("unknown-cause"); ok {
		t.Errorf("CauseOf(\"unknown-cause\") = %q, expected no match", got)
	}
}
