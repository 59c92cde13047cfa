package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ychekhovska/jphstats/internal/econ"
	"github.com/ychekhovska/jphstats/internal/llm"
	"github.com/ychekhovska/jphstats/internal/model"
	"github.com/ychekhovska/jphstats/internal/normalize"
	"github.com/ychekhovska/jphstats/internal/reshape"
)

// Pipeline orchestrates the transformation stages: raw publication CSVs
// to tidy records, tidy records to a unified dataset, and the dataset to
// the economic-impact report.
type Pipeline struct {
	config     *model.Config
	renderer   *Renderer
	calculator *econ.Calculator
	summarizer *llm.Summarizer // optional, nil when disabled
}

// NewPipeline creates a pipeline from configuration. The economic
// assumption tables come from the built-in defaults unless an override
// file is configured.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	assumptions := econ.DefaultAssumptions()
	if cfg.AssumptionsFile != "" {
		a, err := econ.LoadAssumptions(cfg.AssumptionsFile)
		if err != nil {
			return nil, fmt.Errorf("load assumptions: %w", err)
		}
		assumptions = a
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		config:     cfg,
		renderer:   NewRenderer(cfg.Verbose),
		calculator: econ.NewCalculator(assumptions),
		summarizer: summarizer,
	}, nil
}

// Renderer exposes the pipeline's renderer for the CLI layer.
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// ProcessFile transforms one raw CSV into tidy records and writes them to
// the processed directory as {stem}_long.csv.
func (p *Pipeline) ProcessFile(path string) model.FileResult {
	result := model.FileResult{File: filepath.Base(path)}

	table, err := reshape.Load(path, reshape.LoadOptions{HeaderScanRows: p.config.Data.HeaderScanRows})
	if err != nil {
		result.Err = err
		return result
	}

	kind, records, err := reshape.Melt(table)
	if err != nil {
		result.Err = err
		return result
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(p.config.Data.ProcessedDir, stem+"_long.csv")
	if err := p.renderer.WriteRecords(out, records); err != nil {
		result.Err = err
		return result
	}

	result.Kind = kind
	result.Records = len(records)
	result.Output = out
	return result
}

// ProcessDir transforms every CSV in the raw data directory. Failures are
// isolated per file: a malformed input is reported in the summary and the
// batch continues. Files are processed in name order so repeated runs
// produce identical output.
func (p *Pipeline) ProcessDir() (*model.BatchSummary, error) {
	paths, err := filepath.Glob(filepath.Join(p.config.Data.RawDir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", p.config.Data.RawDir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no CSV files in %s", p.config.Data.RawDir)
	}
	sort.Strings(paths)

	if err := os.MkdirAll(p.config.Data.ProcessedDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", p.config.Data.ProcessedDir, err)
	}

	summary := &model.BatchSummary{}
	for _, path := range paths {
		summary.Results = append(summary.Results, p.ProcessFile(path))
	}
	return summary, nil
}

// LoadProcessed reads every tidy CSV from the processed directory and
// returns the combined records plus the source file names.
func (p *Pipeline) LoadProcessed() ([]model.Record, []string, error) {
	paths, err := filepath.Glob(filepath.Join(p.config.Data.ProcessedDir, "*_long.csv"))
	if err != nil {
		return nil, nil, fmt.Errorf("list %s: %w", p.config.Data.ProcessedDir, err)
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no processed files in %s (run process first)", p.config.Data.ProcessedDir)
	}
	sort.Strings(paths)

	var records []model.Record
	var sources []string
	for _, path := range paths {
		recs, err := p.renderer.ReadRecords(path)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, recs...)
		sources = append(sources, filepath.Base(path))
	}
	return records, sources, nil
}

// Compile unifies the tidy records into one year-keyed wide dataset and
// writes it to outPath. Age brackets form the left side of the join;
// gender columns join onto it under the given policy. Rows are ordered by
// year ascending. Records without a year cannot be keyed and are skipped.
func (p *Pipeline) Compile(policy reshape.JoinPolicy, outPath string) error {
	records, _, err := p.LoadProcessed()
	if err != nil {
		return err
	}

	ageFrame := buildYearFrame(records, "suicides", bracketColumns(records))
	genderFrame := buildYearFrame(records, "deaths", genderColumns(records))

	var out *reshape.Frame
	switch {
	case genderFrame.Len() == 0:
		out = ageFrame
	case ageFrame.Len() == 0:
		out = genderFrame
	default:
		out, err = reshape.Join(ageFrame, genderFrame, policy)
		if err != nil {
			return fmt.Errorf("compile: %w", err)
		}
	}
	if out.Len() == 0 {
		return fmt.Errorf("compile: no year-keyed records to unify")
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(outPath), err)
	}
	return p.renderer.WriteFrame(outPath, out)
}

// ReportOptions selects the optional report sections.
type ReportOptions struct {
	// Program enables the program cost-effectiveness section.
	Program *econ.ProgramInputs
	// ProgramCosts overrides the reference budget when Program is set.
	ProgramCosts *econ.ProgramCosts
	// WithLLM enables the narrative appendix when a provider is configured.
	WithLLM bool
}

// BuildReport assembles the full economic-impact report from tidy
// records. All figures are computed before the optional narrative; the
// narrative can fail without failing the report.
func (p *Pipeline) BuildReport(ctx context.Context, records []model.Record, sources []string, opts ReportOptions) (*model.Report, error) {
	age, gender, cause := partitionRecords(records)

	counts := econ.AggregateByBracket(age)
	if len(counts) == 0 {
		return nil, fmt.Errorf("no age-bracket records to analyze")
	}
	impacts := p.calculator.Impact(counts)

	report := &model.Report{
		Sources:      sources,
		Summary:      p.calculator.Summary(impacts),
		AgeBreakdown: impacts,
		WorkingAge:   p.calculator.WorkingAge(impacts),
		Gender:       econ.GenderSummary(sumByCategory(gender)),
		TopCauses:    econ.TopCauses(sumByCategory(cause), 5),
		YearlyTrends: econ.YearlyTrends(age),
	}

	if opts.Program != nil {
		youth, err := econ.YouthStatsFromRecords(age)
		if err != nil {
			return nil, fmt.Errorf("program analysis: %w", err)
		}
		costs := econ.DefaultProgramCosts()
		if opts.ProgramCosts != nil {
			costs = *opts.ProgramCosts
		}
		program, err := econ.ProgramImpact(*opts.Program, costs, youth)
		if err != nil {
			return nil, fmt.Errorf("program analysis: %w", err)
		}
		report.Program = program
	}

	if opts.WithLLM && p.summarizer.IsEnabled() {
		summary, err := p.summarizer.GenerateSummary(ctx, *report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: narrative generation failed: %v\n", err)
		} else {
			report.LLM = summary
		}
	}

	return report, nil
}

// partitionRecords splits tidy records into the age, gender and cause
// series by their category vocabulary.
func partitionRecords(records []model.Record) (age, gender, cause []model.Record) {
	for _, r := range records {
		switch {
		case r.Metric == "suicides":
			age = append(age, r)
		case r.Category == normalize.GenderTotal,
			r.Category == normalize.GenderMale,
			r.Category == normalize.GenderFemale:
			gender = append(gender, r)
		default:
			cause = append(cause, r)
		}
	}
	return age, gender, cause
}

// sumByCategory totals non-null values per category.
func sumByCategory(records []model.Record) map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range records {
		if r.Value == nil {
			continue
		}
		totals[r.Category] += *r.Value
	}
	return totals
}

// buildYearFrame pivots tidy records with the given metric back into a
// year-keyed wide frame, rows ordered by year ascending.
func buildYearFrame(records []model.Record, metric string, cols []string) *reshape.Frame {
	frame := reshape.NewFrame([]string{"year"}, cols)
	if len(cols) == 0 {
		return frame
	}
	colSet := make(map[string]bool, len(cols))
	for _, c := range cols {
		colSet[c] = true
	}

	byYear := make(map[int]map[string]*float64)
	var years []int
	for _, r := range records {
		if r.Metric != metric || r.Year == nil || !colSet[r.Category] {
			continue
		}
		cells, ok := byYear[*r.Year]
		if !ok {
			cells = make(map[string]*float64)
			byYear[*r.Year] = cells
			years = append(years, *r.Year)
		}
		cells[r.Category] = r.Value
	}
	sort.Ints(years)

	for _, y := range years {
		key := reshape.Key(strconv.Itoa(y))
		for _, col := range cols {
			if v, ok := byYear[y][col]; ok {
				frame.Set(key, col, v)
			} else {
				frame.Set(key, col, nil)
			}
		}
	}
	return frame
}

// bracketColumns returns the canonical brackets that actually occur in
// the records, in canonical order.
func bracketColumns(records []model.Record) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		if r.Metric == "suicides" {
			seen[r.Category] = true
		}
	}
	var cols []string
	for _, b := range normalize.CanonicalBrackets {
		if seen[string(b)] {
			cols = append(cols, string(b))
		}
	}
	return cols
}

// genderColumns returns the gender columns present in the records, in
// total/male/female order.
func genderColumns(records []model.Record) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		if r.Metric == "deaths" {
			seen[r.Category] = true
		}
	}
	var cols []string
	for _, g := range []string{normalize.GenderTotal, normalize.GenderMale, normalize.GenderFemale} {
		if seen[g] {
			cols = append(cols, g)
		}
	}
	return cols
}
