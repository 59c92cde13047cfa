package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ychekhovska/jphstats/internal/model"
	"github.com/ychekhovska/jphstats/internal/reshape"
)

// utf8BOM prefixes every CSV product so spreadsheet tools open the
// Japanese-era source names correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// recordHeader is the tidy-record column layout.
var recordHeader = []string{"year", "category", "metric", "value"}

// Renderer writes the pipeline's products: tidy CSVs, compiled wide
// tables and the JSON report.
type Renderer struct {
	verbose bool
}

// NewRenderer creates a renderer.
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// WriteRecords writes tidy records as a BOM-prefixed CSV. Null years and
// values render as empty cells, never as zero.
func (r *Renderer) WriteRecords(path string, records []model.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(recordHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		row := []string{"", rec.Category, rec.Metric, ""}
		if rec.Year != nil {
			row[0] = strconv.Itoa(*rec.Year)
		}
		if rec.Value != nil {
			row[3] = strconv.FormatFloat(*rec.Value, 'f', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadRecords reads a tidy-record CSV back, with or without a BOM.
func (r *Renderer) ReadRecords(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(stripBOM(f))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	var records []model.Record
	for _, row := range rows[1:] {
		if len(row) < 4 {
			continue
		}
		rec := model.Record{Category: row[1], Metric: row[2]}
		if row[0] != "" {
			y, err := strconv.Atoi(row[0])
			if err != nil {
				return nil, fmt.Errorf("%s: bad year %q: %w", path, row[0], err)
			}
			rec.Year = &y
		}
		if row[3] != "" {
			v, err := strconv.ParseFloat(row[3], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: bad value %q: %w", path, row[3], err)
			}
			rec.Value = &v
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteFrame writes a joined frame as a BOM-prefixed CSV: key columns
// first, then the value columns. Null cells render empty.
func (r *Renderer) WriteFrame(path string, frame *reshape.Frame) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	header := append(append([]string{}, frame.KeyCols...), frame.Cols...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, key := range frame.Keys() {
		vals, _ := frame.Row(key)
		row := append([]string{}, reshape.KeyParts(key)...)
		for _, v := range vals {
			if v == nil {
				row = append(row, "")
			} else {
				row = append(row, strconv.FormatFloat(*v, 'f', -1, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderBatchSummary prints the end-of-run per-file outcomes.
func (r *Renderer) RenderBatchSummary(w io.Writer, summary *model.BatchSummary) {
	for _, res := range summary.Results {
		if res.Err != nil {
			fmt.Fprintf(w, "✗ %s: %v\n", res.File, res.Err)
			continue
		}
		if r.verbose {
			fmt.Fprintf(w, "✓ %s: %s table, %d records -> %s\n", res.File, res.Kind, res.Records, res.Output)
		}
	}
	fmt.Fprintf(w, "Processed %d file(s), %d failed\n", summary.Succeeded(), summary.Failed())
}

// stripBOM removes a leading UTF-8 BOM if present.
func stripBOM(r io.Reader) io.Reader {
	buf := make([]byte, 3)
	n, _ := io.ReadFull(r, buf)
	rest := buf[:n]
	if n == 3 && rest[0] == 0xEF && rest[1] == 0xBB && rest[2] == 0xBF {
		return r
	}
	return io.MultiReader(strings.NewReader(string(rest)), r)
}
