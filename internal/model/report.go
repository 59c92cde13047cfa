package model

// Report is the complete economic-impact report. Number fields use plain
// JSON numbers; ratios that are undefined (division by a zero cost) are
// null, never a fabricated value. The report is a pure function of its
// inputs: no timestamps, no per-run identifiers, so re-running over the
// same files produces byte-identical output.
type Report struct {
	Sources []string `json:"sources"`

	Summary      SummaryMetrics    `json:"summary_metrics"`
	AgeBreakdown []BracketImpact   `json:"age_breakdown"`
	WorkingAge   WorkingAgeMetrics `json:"working_age_metrics"`
	Gender       *GenderSummary    `json:"gender_summary,omitempty"`
	TopCauses    []CauseCount      `json:"top_causes,omitempty"`
	YearlyTrends map[int]float64   `json:"yearly_trends,omitempty"`

	Program *ProgramReport `json:"program,omitempty"`

	// LLM is the optional narrative appendix. It is generated after all
	// figures are computed and never affects them.
	LLM *LLMSummary `json:"llm,omitempty"`
}

// BracketImpact carries the derived economic metrics for one age bracket.
type BracketImpact struct {
	Bracket          string   `json:"age_group"`
	Suicides         float64  `json:"total_suicides"`
	Salary           float64  `json:"salary_yen"`
	WorkYearsLeft    float64  `json:"work_years_left"`
	LifetimeEarnings float64  `json:"lifetime_earnings_yen"`
	AnnualLoss       float64  `json:"annual_loss_yen"`
	BaselineLoss     float64  `json:"baseline_loss_yen"`
	ReducedLoss      float64  `json:"reduced_loss_yen"`
	LossPrevented    float64  `json:"loss_prevented_yen"`
	InterventionCost float64  `json:"intervention_cost_yen"`
	ROI              *float64 `json:"roi"` // null when intervention cost is zero
	NetBenefit       float64  `json:"net_benefit_yen"`
}

// SummaryMetrics aggregates the economic burden and intervention impact
// across all brackets.
type SummaryMetrics struct {
	TotalSuicides            float64  `json:"total_suicides"`
	TotalAnnualLossYen       float64  `json:"total_annual_loss_yen"`
	TotalAnnualLossBillion   float64  `json:"total_annual_loss_billion"`
	TotalLossPreventedYen    float64  `json:"total_loss_prevented_yen"`
	TotalInterventionCostYen float64  `json:"total_intervention_cost_yen"`
	TotalNetBenefitYen       float64  `json:"total_net_benefit_yen"`
	OverallROI               *float64 `json:"overall_roi"`
	ReductionRate            float64  `json:"intervention_effectiveness_rate"`
	AvgLifetimeEarningsYen   float64  `json:"avg_lifetime_earnings_yen"`
}

// WorkingAgeMetrics rolls up the 20-59 brackets.
type WorkingAgeMetrics struct {
	TotalSuicides      float64  `json:"total_suicides"`
	TotalLossYen       float64  `json:"total_loss_yen"`
	PercentOfTotalLoss float64  `json:"percent_of_total_loss"`
	AvgROI             *float64 `json:"avg_roi"`
}

// GenderSummary is the gender-stratified breakdown.
type GenderSummary struct {
	TotalDeaths      float64 `json:"total_deaths"`
	MaleDeaths       float64 `json:"male_deaths"`
	FemaleDeaths     float64 `json:"female_deaths"`
	MalePercentage   float64 `json:"male_percentage"`
	FemalePercentage float64 `json:"female_percentage"`
}

// CauseCount is one entry of the leading-causes ranking.
type CauseCount struct {
	Cause      string  `json:"cause"`
	Deaths     float64 `json:"total_deaths"`
	Percentage float64 `json:"percentage"`
}

// ProgramReport is the cost-effectiveness analysis of a concrete
// intervention program, evaluated under several effectiveness scenarios.
type ProgramReport struct {
	Parameters   ProgramParameters         `json:"program_parameters"`
	YouthData    *YouthStats               `json:"youth_suicide_data,omitempty"`
	Reach        ReachMetrics              `json:"reach_metrics"`
	BaselineRisk BaselineRisk              `json:"baseline_risk"`
	Scenarios    map[string]ScenarioImpact `json:"impact_scenarios"`
	WHO          map[string]CostAssessment `json:"who_assessment"`
}

// ProgramParameters echoes the program inputs used.
type ProgramParameters struct {
	SchoolsReached     int     `json:"schools_reached"`
	WorkshopsDelivered int     `json:"workshops_delivered"`
	HotlineContacts    int     `json:"hotline_contacts"`
	ProgramCostYen     float64 `json:"program_cost_jpy"`
}

// YouthStats summarizes the observed youth (10-19) suicide series.
type YouthStats struct {
	TotalSuicides   float64 `json:"total_suicides"`
	AnnualAverage   float64 `json:"annual_average"`
	MostRecentYear  int     `json:"most_recent_year"`
	MostRecentCount float64 `json:"most_recent_year_count"`
	RatePer100k     float64 `json:"rate_per_100k"`
	YearRange       string  `json:"year_range"`
}

// ReachMetrics quantifies how many individuals the program touches.
type ReachMetrics struct {
	SchoolsReached        int     `json:"schools_reached"`
	TotalSchools          int     `json:"total_schools_japan"`
	SchoolCoveragePct     float64 `json:"school_coverage_pct"`
	WorkshopsDelivered    int     `json:"workshops_delivered"`
	StudentsInWorkshops   int     `json:"students_in_workshops"`
	HotlineContactsRaw    int     `json:"hotline_contacts_raw"`
	UniqueHotlineContacts int     `json:"unique_hotline_contacts"`
	TotalReached          int     `json:"total_individuals_reached"`
	PopulationCoveragePct float64 `json:"population_coverage_pct"`
}

// BaselineRisk is the expected mortality in the reached population
// without intervention.
type BaselineRisk struct {
	ExpectedDeaths float64 `json:"expected_deaths_no_intervention"`
	RatePer100k    float64 `json:"suicide_rate_per_100k"`
}

// ScenarioImpact carries the cost-effectiveness figures for one
// effectiveness scenario.
type ScenarioImpact struct {
	EffectivenessRate  float64  `json:"effectiveness_rate"`
	LivesSavedAnnually float64  `json:"lives_saved_annually"`
	DALYsAverted       float64  `json:"dalys_averted"`
	YearsOfLife        float64  `json:"years_of_life_per_person"`
	WorkYears          float64  `json:"work_years_per_person"`
	CostPerLifeYen     *float64 `json:"cost_per_life_saved_jpy"`
	CostPerDALYYen     *float64 `json:"cost_per_daly_jpy"`
	CostPerDALYUSD     *float64 `json:"cost_per_daly_usd"`
	CostPerPersonYen   float64  `json:"cost_per_person_reached_jpy"`
	GrossEarningsYen   float64  `json:"lifetime_gross_earnings_jpy"`
	TaxRevenueYen      float64  `json:"lifetime_tax_revenue_jpy"`
	TotalEconomicValue float64  `json:"total_economic_value_jpy"`
	TotalTaxRevenue    float64  `json:"total_tax_revenue_jpy"`
	NetBenefitYen      float64  `json:"net_benefit_jpy"`
	ROIGross           *float64 `json:"roi_gross_earnings"`
	ROITax             *float64 `json:"roi_tax_revenue"`
}

// CostAssessment classifies a cost-per-DALY figure against the WHO
// cost-effectiveness thresholds.
type CostAssessment struct {
	Classification      string   `json:"classification"`
	HighlyEffectiveUSD  float64  `json:"who_threshold_highly_effective_usd"`
	CostEffectiveUSD    float64  `json:"who_threshold_cost_effective_usd"`
	CostPerDALYUSD      *float64 `json:"program_cost_per_daly_usd"`
	TimesBelowThreshold float64  `json:"times_below_threshold"`
}

// LLMSummary is the optional narrative appendix.
type LLMSummary struct {
	Enabled  bool     `json:"enabled"`
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
	Text     string   `json:"text,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
