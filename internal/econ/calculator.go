package econ

import (
	"sort"

	"github.com/ychekhovska/jphstats/internal/model"
	"github.com/ychekhovska/jphstats/internal/normalize"
)

// Calculator derives per-bracket economic-loss and policy-scenario
// figures from aggregated suicide counts using the human capital
// approach. It is a pure function of its inputs: re-running over the
// same counts and assumptions produces identical output.
type Calculator struct {
	assumptions Assumptions
}

// NewCalculator creates a calculator over the given assumption table.
func NewCalculator(a Assumptions) *Calculator {
	return &Calculator{assumptions: a}
}

// workingAgeBrackets are the brackets rolled up by WorkingAge.
var workingAgeBrackets = map[string]bool{
	"20-29": true,
	"30-39": true,
	"40-49": true,
	"50-59": true,
}

// Impact computes the derived metrics for each bracket present in counts.
// Output is sorted in canonical bracket order. "Total" and "Unknown"
// brackets are excluded: they are not population segments and would
// double-count the economic burden.
func (c *Calculator) Impact(counts map[string]float64) []model.BracketImpact {
	brackets := make([]string, 0, len(counts))
	for b := range counts {
		if b == string(normalize.BracketTotal) || b == string(normalize.BracketUnknown) {
			continue
		}
		brackets = append(brackets, b)
	}
	sort.Slice(brackets, func(i, j int) bool {
		return normalize.BracketLess(normalize.Bracket(brackets[i]), normalize.Bracket(brackets[j]))
	})

	impacts := make([]model.BracketImpact, 0, len(brackets))
	for _, b := range brackets {
		impacts = append(impacts, c.bracketImpact(b, counts[b]))
	}
	return impacts
}

func (c *Calculator) bracketImpact(bracket string, suicides float64) model.BracketImpact {
	a := c.assumptions

	salary := a.Salary(bracket)
	workYears := a.WorkYears(bracket)
	lifetime := salary * workYears
	annualLoss := suicides * lifetime
	lossPrevented := annualLoss * a.ReductionRate
	cost := a.InterventionCost(bracket)

	return model.BracketImpact{
		Bracket:          bracket,
		Suicides:         suicides,
		Salary:           salary,
		WorkYearsLeft:    workYears,
		LifetimeEarnings: lifetime,
		AnnualLoss:       annualLoss,
		BaselineLoss:     annualLoss,
		ReducedLoss:      annualLoss * (1 - a.ReductionRate),
		LossPrevented:    lossPrevented,
		InterventionCost: cost,
		ROI:              ratio(lossPrevented, cost),
		NetBenefit:       lossPrevented - cost,
	}
}

// Summary aggregates bracket impacts into the overall economic burden and
// intervention metrics.
func (c *Calculator) Summary(impacts []model.BracketImpact) model.SummaryMetrics {
	var s model.SummaryMetrics
	var lifetimeSum float64

	for _, im := range impacts {
		s.TotalSuicides += im.Suicides
		s.TotalAnnualLossYen += im.AnnualLoss
		s.TotalLossPreventedYen += im.LossPrevented
		s.TotalInterventionCostYen += im.InterventionCost
		s.TotalNetBenefitYen += im.NetBenefit
		lifetimeSum += im.LifetimeEarnings
	}

	s.TotalAnnualLossBillion = s.TotalAnnualLossYen / 1e9
	s.OverallROI = ratio(s.TotalLossPreventedYen, s.TotalInterventionCostYen)
	s.ReductionRate = c.assumptions.ReductionRate
	if len(impacts) > 0 {
		s.AvgLifetimeEarningsYen = lifetimeSum / float64(len(impacts))
	}
	return s
}

// WorkingAge rolls up the 20-59 brackets.
func (c *Calculator) WorkingAge(impacts []model.BracketImpact) model.WorkingAgeMetrics {
	var w model.WorkingAgeMetrics
	var totalLoss, roiSum float64
	var roiCount int

	for _, im := range impacts {
		totalLoss += im.AnnualLoss
		if !workingAgeBrackets[im.Bracket] {
			continue
		}
		w.TotalSuicides += im.Suicides
		w.TotalLossYen += im.AnnualLoss
		if im.ROI != nil {
			roiSum += *im.ROI
			roiCount++
		}
	}

	if totalLoss > 0 {
		w.PercentOfTotalLoss = w.TotalLossYen / totalLoss * 100
	}
	if roiCount > 0 {
		avg := roiSum / float64(roiCount)
		w.AvgROI = &avg
	}
	return w
}

// GenderSummary computes the gender distribution from aggregated
// male/female/total counts.
func GenderSummary(totals map[string]float64) *model.GenderSummary {
	total := totals[normalize.GenderTotal]
	male := totals[normalize.GenderMale]
	female := totals[normalize.GenderFemale]
	if total == 0 {
		total = male + female
	}
	if total == 0 {
		return nil
	}

	return &model.GenderSummary{
		TotalDeaths:      total,
		MaleDeaths:       male,
		FemaleDeaths:     female,
		MalePercentage:   male / total * 100,
		FemalePercentage: female / total * 100,
	}
}

// TopCauses ranks cause-of-death categories by count, descending, and
// keeps the top n. Ties break alphabetically for reproducible output.
func TopCauses(counts map[string]float64, n int) []model.CauseCount {
	var total float64
	causes := make([]string, 0, len(counts))
	for c, v := range counts {
		causes = append(causes, c)
		total += v
	}
	sort.Slice(causes, func(i, j int) bool {
		if counts[causes[i]] != counts[causes[j]] {
			return counts[causes[i]] > counts[causes[j]]
		}
		return causes[i] < causes[j]
	})

	if n > len(causes) {
		n = len(causes)
	}
	out := make([]model.CauseCount, 0, n)
	for _, c := range causes[:n] {
		pct := 0.0
		if total > 0 {
			pct = counts[c] / total * 100
		}
		out = append(out, model.CauseCount{Cause: c, Deaths: counts[c], Percentage: pct})
	}
	return out
}

// coarseYouthFilter returns a predicate marking redundant coarse-youth
// records. The long annual series reports youths as a single 0-19 bucket
// while the per-year tables split them into 0-9 and 10-19; both describe
// the same population, so for any year covered by the decade brackets
// the 0-19 record must not count again.
func coarseYouthFilter(records []model.Record) func(model.Record) bool {
	decadeYears := make(map[int]bool)
	decadeNoYear := false
	for _, r := range records {
		if r.Category != string(normalize.Bracket0to9) && r.Category != string(normalize.Bracket10to19) {
			continue
		}
		if r.Year == nil {
			decadeNoYear = true
		} else {
			decadeYears[*r.Year] = true
		}
	}
	return func(r model.Record) bool {
		if r.Category != string(normalize.BracketUnder19) {
			return false
		}
		if r.Year == nil {
			return decadeNoYear
		}
		return decadeYears[*r.Year]
	}
}

// AggregateByBracket sums record values per category, skipping records
// whose value is null. Null years are fine here; the bracket is the key.
// Coarse 0-19 records are dropped for years the decade brackets cover.
func AggregateByBracket(records []model.Record) map[string]float64 {
	redundant := coarseYouthFilter(records)
	out := make(map[string]float64)
	for _, r := range records {
		if r.Value == nil || redundant(r) {
			continue
		}
		out[r.Category] += *r.Value
	}
	return out
}

// YearlyTrends sums record values per year, skipping null years and null
// values. "Total" rows are excluded so years carrying both a total column
// and per-bracket columns are not double counted, and coarse 0-19 records
// are dropped for years the decade brackets cover.
func YearlyTrends(records []model.Record) map[int]float64 {
	redundant := coarseYouthFilter(records)
	out := make(map[int]float64)
	for _, r := range records {
		if r.Year == nil || r.Value == nil {
			continue
		}
		if r.Category == string(normalize.BracketTotal) || redundant(r) {
			continue
		}
		out[*r.Year] += *r.Value
	}
	return out
}

// ratio returns num/den, or nil when the denominator is zero: an
// undefined ROI is reported as null, never as a crash or a wrong number.
func ratio(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	v := num / den
	return &v
}
