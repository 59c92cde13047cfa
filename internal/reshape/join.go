package reshape

import (
	"fmt"
	"strings"
)

// JoinPolicy is the declared behaviour for rows whose key has no match on
// the other side. Every call site states its policy explicitly.
type JoinPolicy int

const (
	// JoinInner drops rows without a match on either side.
	JoinInner JoinPolicy = iota
	// JoinLeft keeps every left row; unmatched right columns become null.
	JoinLeft
)

func (p JoinPolicy) String() string {
	switch p {
	case JoinInner:
		return "inner"
	case JoinLeft:
		return "left"
	default:
		return fmt.Sprintf("JoinPolicy(%d)", int(p))
	}
}

// Frame is a minimal keyed table used when unifying tidy outputs into one
// analysis-ready dataset. Values are nullable; row order is insertion
// order, which keeps outputs deterministic.
type Frame struct {
	KeyCols []string
	Cols    []string

	rows  map[string][]*float64
	order []string
}

// keySep separates key parts inside the composite map key.
const keySep = "\x1f"

// NewFrame creates an empty frame with the given key and value columns.
func NewFrame(keyCols, cols []string) *Frame {
	return &Frame{
		KeyCols: keyCols,
		Cols:    cols,
		rows:    make(map[string][]*float64),
	}
}

// Key builds a composite key from its parts.
func Key(parts ...string) string {
	return strings.Join(parts, keySep)
}

// KeyParts splits a composite key back into its parts.
func KeyParts(key string) []string {
	return strings.Split(key, keySep)
}

// Add inserts or replaces the row for key. The value slice must align
// with Cols; short slices are padded with nulls.
func (f *Frame) Add(key string, vals []*float64) {
	if len(vals) < len(f.Cols) {
		padded := make([]*float64, len(f.Cols))
		copy(padded, vals)
		vals = padded
	}
	if _, exists := f.rows[key]; !exists {
		f.order = append(f.order, key)
	}
	f.rows[key] = vals
}

// Set upserts a single cell, creating the row when absent.
func (f *Frame) Set(key, col string, val *float64) {
	idx := -1
	for i, c := range f.Cols {
		if c == col {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	row, exists := f.rows[key]
	if !exists {
		row = make([]*float64, len(f.Cols))
		f.order = append(f.order, key)
		f.rows[key] = row
	}
	row[idx] = val
}

// Row returns the values for key and whether the key exists.
func (f *Frame) Row(key string) ([]*float64, bool) {
	row, ok := f.rows[key]
	return row, ok
}

// Keys returns the row keys in insertion order.
func (f *Frame) Keys() []string {
	return f.order
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.order)
}

// Join merges two frames sharing the same key columns. Output row order
// is the left frame's insertion order; under JoinLeft, unmatched left
// rows are kept with nulls for the right-hand columns.
func Join(left, right *Frame, policy JoinPolicy) (*Frame, error) {
	if len(left.KeyCols) != len(right.KeyCols) {
		return nil, fmt.Errorf("join: key columns differ: %v vs %v", left.KeyCols, right.KeyCols)
	}
	for i := range left.KeyCols {
		if left.KeyCols[i] != right.KeyCols[i] {
			return nil, fmt.Errorf("join: key columns differ: %v vs %v", left.KeyCols, right.KeyCols)
		}
	}

	out := NewFrame(left.KeyCols, append(append([]string{}, left.Cols...), right.Cols...))
	for _, key := range left.order {
		lrow := left.rows[key]
		rrow, matched := right.rows[key]
		if !matched {
			if policy == JoinInner {
				continue
			}
			rrow = make([]*float64, len(right.Cols))
		}
		merged := make([]*float64, 0, len(out.Cols))
		merged = append(merged, lrow...)
		merged = append(merged, rrow...)
		out.Add(key, merged)
	}
	return out, nil
}
