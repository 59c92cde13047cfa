package econ

import (
	"fmt"
	"sort"

	"github.com/ychekhovska/jphstats/internal/model"
	"github.com/ychekhovska/jphstats/internal/normalize"
)

// National context and economic parameters for the program model.
const (
	totalSchoolsJapan    = 13_900 // junior high + high school
	avgStudentsPerSchool = 500
	japanYouthPopulation = 11_000_000 // ages 10-19, approx. 2023

	lifeExpectancyJapan = 84
	retirementAge       = 65
	avgAnnualSalary     = 4_500_000
	effectiveTaxRate    = 0.25

	// Share of hotline contacts assumed to be unique individuals.
	uniqueContactRate = 0.80

	yenPerUSD = 150

	// WHO cost-effectiveness thresholds, approx. Japan GDP per capita
	// and 3x GDP per capita, in USD.
	whoHighlyEffectiveUSD = 34_000
	whoCostEffectiveUSD   = 102_000
)

// scenarios are the effectiveness rates evaluated, from the crisis
// intervention literature.
var scenarios = map[string]float64{
	"conservative": 0.15,
	"moderate":     0.25,
	"optimistic":   0.35,
}

// ProgramCosts itemizes a nonprofit program's annual operating budget.
type ProgramCosts struct {
	Staff        map[string]float64 `yaml:"staff"`
	Operating    map[string]float64 `yaml:"operating"`
	BenefitsRate float64            `yaml:"benefits_rate"`
}

// DefaultProgramCosts returns the reference program budget: three
// part-time workshop facilitators, outreach and direction staff, and
// hotline/workshop operating costs.
func DefaultProgramCosts() ProgramCosts {
	return ProgramCosts{
		Staff: map[string]float64{
			"workshop_facilitator_1":    2_000_000,
			"workshop_facilitator_2":    2_000_000,
			"workshop_facilitator_3":    2_000_000,
			"lead_outreach_coordinator": 3_000_000,
			"program_director":          5_000_000,
			"admin_support":             500_000,
		},
		Operating: map[string]float64{
			"workshop_materials":     300_000,
			"transportation":         400_000,
			"hotline_infrastructure": 200_000,
			"staff_training":         150_000,
			"outreach_materials":     200_000,
			"misc_supplies":          150_000,
		},
		BenefitsRate: 0.15,
	}
}

// Total returns the total annual program cost including benefits.
func (c ProgramCosts) Total() float64 {
	var staff, operating float64
	for _, v := range c.Staff {
		staff += v
	}
	for _, v := range c.Operating {
		operating += v
	}
	return staff + staff*c.BenefitsRate + operating
}

// ProgramInputs are the observed program activity figures.
type ProgramInputs struct {
	SchoolsReached     int
	WorkshopsDelivered int
	HotlineContacts    int

	// BudgetYen overrides the estimated program cost when positive.
	BudgetYen float64

	// AvgAgeAtPrevention is the average participant age; defaults to 17.
	AvgAgeAtPrevention float64
}

// YouthStatsFromRecords derives the observed youth (10-19) statistics
// from tidy age records. Records with null years or values are excluded
// from the arithmetic but do not fail the computation.
func YouthStatsFromRecords(records []model.Record) (*model.YouthStats, error) {
	byYear := make(map[int]float64)
	for _, r := range records {
		if r.Category != string(normalize.Bracket10to19) {
			continue
		}
		if r.Year == nil || r.Value == nil {
			continue
		}
		byYear[*r.Year] += *r.Value
	}
	if len(byYear) == 0 {
		return nil, fmt.Errorf("no usable records for age group %s", normalize.Bracket10to19)
	}

	years := make([]int, 0, len(byYear))
	var total float64
	for y, v := range byYear {
		years = append(years, y)
		total += v
	}
	sort.Ints(years)

	first, last := years[0], years[len(years)-1]
	span := float64(last - first + 1)
	annual := total / span

	return &model.YouthStats{
		TotalSuicides:   total,
		AnnualAverage:   annual,
		MostRecentYear:  last,
		MostRecentCount: byYear[last],
		RatePer100k:     annual / japanYouthPopulation * 100_000,
		YearRange:       fmt.Sprintf("%d-%d", first, last),
	}, nil
}

// ProgramImpact evaluates the program's reach, baseline risk and
// cost-effectiveness under each scenario. youth must carry an observed
// suicide rate; the model never invents one.
func ProgramImpact(inputs ProgramInputs, costs ProgramCosts, youth *model.YouthStats) (*model.ProgramReport, error) {
	if youth == nil {
		return nil, fmt.Errorf("youth statistics required for baseline risk")
	}

	programCost := inputs.BudgetYen
	if programCost <= 0 {
		programCost = costs.Total()
	}
	avgAge := inputs.AvgAgeAtPrevention
	if avgAge == 0 {
		avgAge = 17
	}

	reach := calculateReach(inputs)
	expectedDeaths := float64(reach.TotalReached) / 100_000 * youth.RatePer100k

	impacts := make(map[string]model.ScenarioImpact, len(scenarios))
	who := make(map[string]model.CostAssessment, len(scenarios))
	for name, effectiveness := range scenarios {
		impact := scenarioImpact(programCost, avgAge, expectedDeaths, effectiveness, reach.TotalReached)
		impacts[name] = impact
		who[name] = assessCostEffectiveness(impact.CostPerDALYUSD)
	}

	return &model.ProgramReport{
		Parameters: model.ProgramParameters{
			SchoolsReached:     inputs.SchoolsReached,
			WorkshopsDelivered: inputs.WorkshopsDelivered,
			HotlineContacts:    inputs.HotlineContacts,
			ProgramCostYen:     programCost,
		},
		YouthData: youth,
		Reach:     reach,
		BaselineRisk: model.BaselineRisk{
			ExpectedDeaths: expectedDeaths,
			RatePer100k:    youth.RatePer100k,
		},
		Scenarios: impacts,
		WHO:       who,
	}, nil
}

func calculateReach(inputs ProgramInputs) model.ReachMetrics {
	students := inputs.SchoolsReached * avgStudentsPerSchool
	unique := int(float64(inputs.HotlineContacts) * uniqueContactRate)
	total := students + unique
	nationalStudents := totalSchoolsJapan * avgStudentsPerSchool

	return model.ReachMetrics{
		SchoolsReached:        inputs.SchoolsReached,
		TotalSchools:          totalSchoolsJapan,
		SchoolCoveragePct:     float64(inputs.SchoolsReached) / totalSchoolsJapan * 100,
		WorkshopsDelivered:    inputs.WorkshopsDelivered,
		StudentsInWorkshops:   students,
		HotlineContactsRaw:    inputs.HotlineContacts,
		UniqueHotlineContacts: unique,
		TotalReached:          total,
		PopulationCoveragePct: float64(total) / float64(nationalStudents) * 100,
	}
}

func scenarioImpact(programCost, avgAge, expectedDeaths, effectiveness float64, reached int) model.ScenarioImpact {
	livesSaved := expectedDeaths * effectiveness
	yearsOfLife := lifeExpectancyJapan - avgAge
	dalys := livesSaved * yearsOfLife

	workYears := retirementAge - avgAge
	grossEarnings := workYears * avgAnnualSalary
	taxRevenue := grossEarnings * effectiveTaxRate

	totalEconomicValue := livesSaved * grossEarnings
	totalTaxRevenue := livesSaved * taxRevenue

	costPerDALY := ratio(programCost, dalys)
	var costPerDALYUSD *float64
	if costPerDALY != nil {
		usd := *costPerDALY / yenPerUSD
		costPerDALYUSD = &usd
	}

	costPerPerson := 0.0
	if reached > 0 {
		costPerPerson = programCost / float64(reached)
	}

	return model.ScenarioImpact{
		EffectivenessRate:  effectiveness,
		LivesSavedAnnually: livesSaved,
		DALYsAverted:       dalys,
		YearsOfLife:        yearsOfLife,
		WorkYears:          workYears,
		CostPerLifeYen:     ratio(programCost, livesSaved),
		CostPerDALYYen:     costPerDALY,
		CostPerDALYUSD:     costPerDALYUSD,
		CostPerPersonYen:   costPerPerson,
		GrossEarningsYen:   grossEarnings,
		TaxRevenueYen:      taxRevenue,
		TotalEconomicValue: totalEconomicValue,
		TotalTaxRevenue:    totalTaxRevenue,
		NetBenefitYen:      totalEconomicValue - programCost,
		ROIGross:           ratio(totalEconomicValue, programCost),
		ROITax:             ratio(totalTaxRevenue, programCost),
	}
}

// assessCostEffectiveness classifies a cost-per-DALY figure against the
// WHO thresholds. A nil cost (no DALYs averted) is above threshold.
func assessCostEffectiveness(costPerDALYUSD *float64) model.CostAssessment {
	a := model.CostAssessment{
		HighlyEffectiveUSD: whoHighlyEffectiveUSD,
		CostEffectiveUSD:   whoCostEffectiveUSD,
		CostPerDALYUSD:     costPerDALYUSD,
	}

	switch {
	case costPerDALYUSD == nil:
		a.Classification = "ABOVE THRESHOLD"
	case *costPerDALYUSD < whoHighlyEffectiveUSD:
		a.Classification = "HIGHLY COST-EFFECTIVE"
		a.TimesBelowThreshold = whoHighlyEffectiveUSD / *costPerDALYUSD
	case *costPerDALYUSD < whoCostEffectiveUSD:
		a.Classification = "COST-EFFECTIVE"
		a.TimesBelowThreshold = whoCostEffectiveUSD / *costPerDALYUSD
	default:
		a.Classification = "ABOVE THRESHOLD"
	}
	return a
}
