package reshape

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ychekhovska/jphstats/internal/normalize"
)

// ErrNoHeader indicates that no header row could be located in a file.
// This is fatal for that file only; the batch continues with the rest.
var ErrNoHeader = errors.New("no recognizable header row")

// Table is an immutable raw table read from one CSV artifact. Header is
// the detected header row; Rows holds everything below it.
type Table struct {
	Source string
	Header []string
	Rows   [][]string
}

// LoadOptions controls raw table loading.
type LoadOptions struct {
	// HeaderScanRows bounds the header auto-detection scan. Zero means
	// the default of 10.
	HeaderScanRows int
}

// Load reads a raw CSV table. Input is UTF-8, optionally BOM-prefixed;
// field counts may vary per row (PDF-extracted tables are ragged). The
// header row is auto-detected because extracted tables often carry title
// and footnote rows above the real header.
func Load(path string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.Source = path
	return t, nil
}

// Read parses a raw CSV table from r. See Load.
func Read(r io.Reader, opts LoadOptions) (*Table, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrNoHeader)
	}

	scan := opts.HeaderScanRows
	if scan <= 0 {
		scan = 10
	}
	idx, ok := detectHeader(rows, scan)
	if !ok {
		return nil, ErrNoHeader
	}

	return &Table{
		Header: trimAll(rows[idx]),
		Rows:   rows[idx+1:],
	}, nil
}

// detectHeader scans the first maxScan rows for the row containing the
// category labels. A row qualifies when at least one cell normalizes to a
// known age bracket, gender column or cause-classification column.
func detectHeader(rows [][]string, maxScan int) (int, bool) {
	if maxScan > len(rows) {
		maxScan = len(rows)
	}
	for i := 0; i < maxScan; i++ {
		for _, cell := range rows[i] {
			if isCategoryHeader(cell) {
				return i, true
			}
		}
	}
	return 0, false
}

func isCategoryHeader(cell string) bool {
	if _, ok := normalize.BracketOf(cell); ok {
		return true
	}
	if _, ok := normalize.GenderOf(cell); ok {
		return true
	}
	return normalize.FoldWidth(cell) == causeColumn
}

// skipBOM strips a leading UTF-8 byte order mark, which spreadsheet
// exports routinely prepend.
func skipBOM(r io.Reader) io.Reader {
	br := make([]byte, 3)
	n, _ := io.ReadFull(r, br)
	if n == 3 && br[0] == 0xEF && br[1] == 0xBB && br[2] == 0xBF {
		return r
	}
	return io.MultiReader(strings.NewReader(string(br[:n])), r)
}

func trimAll(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
