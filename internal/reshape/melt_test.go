package reshape

import (
	"strings"
	"testing"

	"github.com/ychekhovska/jphstats/internal/model"
)

func loadTable(t *testing.T, csv string) *Table {
	t.Helper()
	tbl, err := Read(strings.NewReader(csv), LoadOptions{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return tbl
}

func TestMelt_AgeTable(t *testing.T) {
	tbl := loadTable(t, "年,20～29歳,30～39歳,不詳\nR4,\"2,483\",2545,12\nR5,2403,2490,不詳\n")

	kind, records, err := Melt(tbl)
	if err != nil {
		t.Fatalf("Melt: %v", err)
	}
	if kind != model.TableAge {
		t.Fatalf("kind = %q, want %q", kind, model.TableAge)
	}

	// 3 category columns x 2 rows = 6 records, in (row, column) order.
	if len(records) != 6 {
		t.Fatalf("expected 6 records, got %d", len(records))
	}

	first := records[0]
	if first.Year == nil || *first.Year != 2022 {
		t.Errorf("first record year = %v, want 2022", first.Year)
	}
	if first.Category != "20-29" {
		t.Errorf("first record category = %q, want 20-29", first.Category)
	}
	if first.Value == nil || *first.Value != 2483 {
		t.Errorf("first record value = %v, want 2483 (thousands separator stripped)", first.Value)
	}

	// The "不詳" count cell coerces to null but the record is retained.
	last := records[5]
	if last.Category != "Unknown" {
		t.Errorf("last record category = %q, want Unknown", last.Category)
	}
	if last.Value != nil {
		t.Errorf("last record value = %v, want null", *last.Value)
	}
	if last.Year == nil || *last.Year != 2023 {
		t.Errorf("last record year = %v, want 2023", last.Year)
	}
}

func TestMelt_CountPreserved(t *testing.T) {
	// K category columns x R rows must yield exactly K*R records even
	// when cells are missing or unparseable.
	tbl := loadTable(t, "年,0～9歳,10～19歳,20～29歳\nH30,5,599\nR元,,,\nR2,7,777,2521\n")

	_, records, err := Melt(tbl)
	if err != nil {
		t.Fatalf("Melt: %v", err)
	}
	if len(records) != 9 {
		t.Errorf("expected 3x3=9 records, got %d", len(records))
	}
}

func TestMelt_GenderTable(t *testing.T) {
	tbl := loadTable(t, "年,自殺者_総数,自殺者_男性,自殺者_女性\nR4,21881,14746,7135\n")

	kind, records, err := Melt(tbl)
	if err != nil {
		t.Fatalf("Melt: %v", err)
	}
	if kind != model.TableGender {
		t.Fatalf("kind = %q, want %q", kind, model.TableGender)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[1].Category != "male" || records[1].Value == nil || *records[1].Value != 14746 {
		t.Errorf("male record = %+v", records[1])
	}
}

func TestMelt_CauseTable(t *testing.T) {
	tbl := loadTable(t, "問題分類,人数\n健康問題,12403\n経済・生活問題,4697\nその他,1733\n")

	kind, records, err := Melt(tbl)
	if err != nil {
		t.Fatalf("Melt: %v", err)
	}
	if kind != model.TableCause {
		t.Fatalf("kind = %q, want %q", kind, model.TableCause)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Category != "Health issues" {
		t.Errorf("cause = %q, want translated label", records[0].Category)
	}
	if records[0].Year != nil {
		t.Errorf("cause table has no year column, got %v", *records[0].Year)
	}
}

func TestMelt_UnparseableYearIsNull(t *testing.T) {
	tbl := loadTable(t, "年,20～29歳\n不明,100\n")

	_, records, err := Melt(tbl)
	if err != nil {
		t.Fatalf("Melt: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Year != nil {
		t.Errorf("year = %v, want null for unparseable era label", *records[0].Year)
	}
	if records[0].Value == nil || *records[0].Value != 100 {
		t.Errorf("value = %v, want 100 (row retained)", records[0].Value)
	}
}

func TestMelt_DeterministicOrder(t *testing.T) {
	csv := "年,20～29歳,30～39歳\nR4,1,2\nR5,3,4\n"

	_, a, err := Melt(loadTable(t, csv))
	if err != nil {
		t.Fatalf("Melt: %v", err)
	}
	_, b, err := Melt(loadTable(t, csv))
	if err != nil {
		t.Fatalf("Melt: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Category != b[i].Category || *a[i].Value != *b[i].Value {
			t.Errorf("record %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
