package reshape

import (
	"testing"
)

func fv(v float64) *float64 { return &v }

func buildFrames() (*Frame, *Frame) {
	left := NewFrame([]string{"year"}, []string{"suicides"})
	for i, y := range []string{"2019", "2020", "2021", "2022", "2023"} {
		left.Add(Key(y), []*float64{fv(float64(100 + i))})
	}

	right := NewFrame([]string{"year"}, []string{"male"})
	right.Add(Key("2019"), []*float64{fv(70)})
	right.Add(Key("2020"), []*float64{fv(71)})
	right.Add(Key("2021"), []*float64{fv(72)})
	right.Add(Key("1999"), []*float64{fv(1)})
	right.Add(Key("2000"), []*float64{fv(2)})
	return left, right
}

func TestJoin_Left(t *testing.T) {
	left, right := buildFrames()

	out, err := Join(left, right, JoinLeft)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}

	// Declared left-join policy: all 5 left rows survive, the 2 without a
	// match carry nulls for the right-hand columns.
	if out.Len() != 5 {
		t.Fatalf("expected 5 rows, got %d", out.Len())
	}

	unmatched := 0
	for _, key := range out.Keys() {
		row, _ := out.Row(key)
		if len(row) != 2 {
			t.Fatalf("row %q has %d columns, want 2", key, len(row))
		}
		if row[0] == nil {
			t.Errorf("row %q lost its left value", key)
		}
		if row[1] == nil {
			unmatched++
		}
	}
	if unmatched != 2 {
		t.Errorf("expected 2 rows with null right side, got %d", unmatched)
	}
}

func TestJoin_Inner(t *testing.T) {
	left, right := buildFrames()

	out, err := Join(left, right, JoinInner)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if out.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", out.Len())
	}
	for _, key := range out.Keys() {
		row, _ := out.Row(key)
		if row[0] == nil || row[1] == nil {
			t.Errorf("inner join row %q carries nulls: %v", key, row)
		}
	}
}

func TestJoin_OrderIsLeftInsertionOrder(t *testing.T) {
	left, right := buildFrames()

	out, err := Join(left, right, JoinLeft)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	want := []string{"2019", "2020", "2021", "2022", "2023"}
	for i, key := range out.Keys() {
		if KeyParts(key)[0] != want[i] {
			t.Errorf("row %d key = %q, want %q", i, key, want[i])
		}
	}
}

func TestJoin_KeyMismatch(t *testing.T) {
	left := NewFrame([]string{"year"}, []string{"a"})
	right := NewFrame([]string{"year", "category"}, []string{"b"})

	if _, err := Join(left, right, JoinLeft); err == nil {
		t.Fatal("expected error for differing key columns")
	}
}

func TestFrame_SetCreatesAndUpdates(t *testing.T) {
	f := NewFrame([]string{"year"}, []string{"a", "b"})
	f.Set(Key("2020"), "a", fv(1))
	f.Set(Key("2020"), "b", fv(2))
	f.Set(Key("2020"), "missing", fv(3)) // silently ignored

	row, ok := f.Row(Key("2020"))
	if !ok {
		t.Fatal("row not created")
	}
	if row[0] == nil || *row[0] != 1 || row[1] == nil || *row[1] != 2 {
		t.Errorf("unexpected row: %v", row)
	}
}
