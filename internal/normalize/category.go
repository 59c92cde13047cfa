package normalize

// Gender columns as they appear in the gender breakdown tables.
const (
	GenderTotal  = "total"
	GenderMale   = "male"
	GenderFemale = "female"
)

var genderAliases = map[string]string{
	"自殺者_総数": GenderTotal,
	"自殺者_男性": GenderMale,
	"自殺者_女性": GenderFemale,
	"総数_男女":  GenderTotal,
	"男性":     GenderMale,
	"女性":     GenderFemale,
	"男":      GenderMale,
	"女":      GenderFemale,
}

// GenderOf maps a raw gender column header to its canonical label.
func GenderOf(label string) (string, bool) {
	g, ok := genderAliases[FoldWidth(label)]
	return g, ok
}

// causeTranslations maps the problem-classification labels of the cause
// tables to English category names. The vocabulary is closed; labels
// outside it return no match and are excluded from cause aggregates.
var causeTranslations = map[string]string{
	"健康問題":        "Health issues",
	"経済・生活問題":     "Economic / Life issues",
	"家庭問題":        "Family issues",
	"勤務問題":        "Work-related issues",
	"学校問題":        "School issues",
	"交際問題":        "Relationship issues",
	"男女問題":        "Relationship issues",
	"交際問題(男女問題)": "Relationship issues",
	"その他":         "Other",
	"不詳":          "Unknown",
}

// CauseOf maps a raw problem-classification label to its English name.
func CauseOf(label string) (string, bool) {
	c, ok := causeTranslations[FoldWidth(label)]
	return c, ok
}
