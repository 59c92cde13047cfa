package reshape

import (
	"fmt"
	"strings"

	"github.com/ychekhovska/jphstats/internal/model"
	"github.com/ychekhovska/jphstats/internal/normalize"
)

// causeColumn is the problem-classification column of cause tables.
const causeColumn = "問題分類"

// countColumn is the person-count column of cause tables.
const countColumn = "人数"

// Classify inspects a table header and decides which of the known source
// shapes it has. Age brackets win over gender columns because combined
// tables key their rows by bracket.
func Classify(t *Table) (model.TableKind, error) {
	hasGender := false
	for _, h := range t.Header {
		if _, ok := normalize.BracketOf(h); ok {
			return model.TableAge, nil
		}
		if normalize.FoldWidth(h) == causeColumn {
			return model.TableCause, nil
		}
		if _, ok := normalize.GenderOf(h); ok {
			hasGender = true
		}
	}
	if hasGender {
		return model.TableGender, nil
	}
	return "", fmt.Errorf("%s: unrecognized table shape", t.Source)
}

// Melt converts a raw wide table into tidy long records. The shape is
// classified from the header; output order is (row, column) insertion
// order, so repeated runs over the same input produce identical output.
func Melt(t *Table) (model.TableKind, []model.Record, error) {
	kind, err := Classify(t)
	if err != nil {
		return "", nil, err
	}

	var records []model.Record
	switch kind {
	case model.TableAge:
		records = meltColumns(t, "suicides", func(h string) (string, bool) {
			b, ok := normalize.BracketOf(h)
			return string(b), ok
		})
	case model.TableGender:
		records = meltColumns(t, "deaths", func(h string) (string, bool) {
			return normalize.GenderOf(h)
		})
	case model.TableCause:
		records = meltCauseRows(t)
	}
	return kind, records, nil
}

// meltColumns melts a table with identifier columns (year) and one column
// per category: K category columns x R rows yield exactly K*R records.
func meltColumns(t *Table, metric string, classify func(string) (string, bool)) []model.Record {
	type catCol struct {
		idx      int
		category string
	}

	var cats []catCol
	isCat := make(map[int]bool)
	for i, h := range t.Header {
		if c, ok := classify(h); ok {
			cats = append(cats, catCol{idx: i, category: c})
			isCat[i] = true
		}
	}
	yearIdx := yearColumn(t.Header, isCat)

	var records []model.Record
	for _, row := range t.Rows {
		if blankRow(row) {
			continue
		}
		year := rowYear(row, yearIdx)
		for _, c := range cats {
			var value *float64
			if c.idx < len(row) {
				if v, ok := normalize.Number(row[c.idx]); ok {
					value = &v
				}
			}
			records = append(records, model.Record{
				Year:     year,
				Category: c.category,
				Metric:   metric,
				Value:    value,
			})
		}
	}
	return records
}

// meltCauseRows handles cause tables, which are already long: one row per
// problem classification with a count column.
func meltCauseRows(t *Table) []model.Record {
	causeIdx, valueIdx, yearIdx := -1, -1, -1
	for i, h := range t.Header {
		switch normalize.FoldWidth(h) {
		case causeColumn:
			causeIdx = i
		case countColumn:
			valueIdx = i
		case "年", "年度":
			yearIdx = i
		}
	}
	if valueIdx < 0 {
		// Fall back to the column after the classification.
		valueIdx = causeIdx + 1
	}

	var records []model.Record
	for _, row := range t.Rows {
		if blankRow(row) || causeIdx >= len(row) {
			continue
		}
		cause, ok := normalize.CauseOf(row[causeIdx])
		if !ok {
			// Unrecognized classification: keep the raw label so the
			// row stays auditable, but flag it with no translation.
			cause = row[causeIdx]
		}

		var value *float64
		if valueIdx < len(row) {
			if v, vok := normalize.Number(row[valueIdx]); vok {
				value = &v
			}
		}
		records = append(records, model.Record{
			Year:     rowYear(row, yearIdx),
			Category: cause,
			Metric:   "deaths",
			Value:    value,
		})
	}
	return records
}

// yearColumn picks the identifier column carrying the year: a column
// named 年/年度 when present, otherwise the first non-category column.
// Returns -1 when the table has no identifier column at all.
func yearColumn(header []string, isCategory map[int]bool) int {
	for i, h := range header {
		switch normalize.FoldWidth(h) {
		case "年", "年度":
			return i
		}
	}
	for i := range header {
		if !isCategory[i] {
			return i
		}
	}
	return -1
}

// rowYear normalizes the year cell of a row; nil when there is no year
// column or the label is unparseable.
func rowYear(row []string, yearIdx int) *int {
	if yearIdx < 0 || yearIdx >= len(row) {
		return nil
	}
	y, ok := normalize.Year(row[yearIdx])
	if !ok {
		return nil
	}
	return &y
}

// blankRow reports whether every cell of a row is empty or whitespace.
func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
