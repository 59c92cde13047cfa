package model

// Record is one normalized row of a tidy table: a (year, category, value)
// triple plus the metric the value measures ("suicides", "male", "Health
// issues" counts, ...). Year and Value are pointers because unparseable
// era labels and non-numeric cells fail closed to null instead of raising;
// rows with nulls are retained so totals and unknowns stay auditable.
type Record struct {
	Year     *int     `json:"year"`
	Category string   `json:"category"`
	Metric   string   `json:"metric"`
	Value    *float64 `json:"value"`
}

// TableKind classifies the shape of a raw source table.
type TableKind string

const (
	TableAge    TableKind = "age"    // year rows x age-bracket columns
	TableGender TableKind = "gender" // year rows x total/male/female columns
	TableCause  TableKind = "cause"  // problem-classification rows x count column
)

// FileResult records the outcome of processing one input file. Per-file
// failures are isolated: a malformed file never aborts the batch.
type FileResult struct {
	File    string    `json:"file"`
	Kind    TableKind `json:"kind,omitempty"`
	Records int       `json:"records"`
	Output  string    `json:"output,omitempty"`
	Err     error     `json:"-"`
}

// BatchSummary is the end-of-run per-file success/failure report.
type BatchSummary struct {
	Results []FileResult
}

// Succeeded returns the number of files processed without error.
func (s *BatchSummary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of files that could not be processed.
func (s *BatchSummary) Failed() int {
	return len(s.Results) - s.Succeeded()
}
