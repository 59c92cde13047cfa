package econ

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Assumptions is the static economic assumption table: per-bracket
// constants plus the global intervention reduction rate. It is loaded
// once, passed explicitly into the calculator and never mutated.
//
// Salary sources: GaijinPot / A-Realty salary breakdowns by age group
// (2025). Intervention costs are hypothetical policy-spend figures.
type Assumptions struct {
	SalaryByAge           map[string]float64 `yaml:"salary_by_age"`
	WorkYearsLeft         map[string]float64 `yaml:"work_years_left"`
	InterventionCostByAge map[string]float64 `yaml:"intervention_cost_by_age"`
	ReductionRate         float64            `yaml:"reduction_rate"`
}

// DefaultAssumptions returns the built-in assumption tables.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		SalaryByAge: map[string]float64{
			"0-9":   0, // no workforce participation
			"10-19": 1_500_000,
			"20-29": 3_000_000,
			"30-39": 4_000_000,
			"40-49": 5_000_000,
			"50-59": 6_000_000,
			"60-69": 3_000_000,
			"70-79": 2_500_000,
			"80+":   2_500_000,
		},
		WorkYearsLeft: map[string]float64{
			"0-9":   45,
			"10-19": 40,
			"20-29": 35,
			"30-39": 25,
			"40-49": 15,
			"50-59": 7,
			"60-69": 3,
			"70-79": 0,
			"80+":   0,
		},
		InterventionCostByAge: map[string]float64{
			"0-9":   1_000_000_000,
			"10-19": 3_000_000_000,
			"20-29": 5_000_000_000,
			"30-39": 5_000_000_000,
			"40-49": 4_000_000_000,
			"50-59": 3_000_000_000,
			"60-69": 2_000_000_000,
			"70-79": 1_000_000_000,
			"80+":   500_000_000,
		},
		ReductionRate: 0.15,
	}
}

// LoadAssumptions reads assumption overrides from a YAML file. Sections
// absent from the file keep their built-in defaults.
func LoadAssumptions(path string) (Assumptions, error) {
	a := DefaultAssumptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("read assumptions: %w", err)
	}

	var override Assumptions
	if err := yaml.Unmarshal(data, &override); err != nil {
		return a, fmt.Errorf("parse assumptions: %w", err)
	}

	if override.SalaryByAge != nil {
		a.SalaryByAge = override.SalaryByAge
	}
	if override.WorkYearsLeft != nil {
		a.WorkYearsLeft = override.WorkYearsLeft
	}
	if override.InterventionCostByAge != nil {
		a.InterventionCostByAge = override.InterventionCostByAge
	}
	if override.ReductionRate != 0 {
		a.ReductionRate = override.ReductionRate
	}
	return a, nil
}

// Salary returns the average annual salary for a bracket. Brackets absent
// from the table count as 0: no workforce participation, no earnings loss.
func (a Assumptions) Salary(bracket string) float64 {
	return a.SalaryByAge[bracket]
}

// WorkYears returns the expected remaining working years for a bracket;
// missing brackets default to 0.
func (a Assumptions) WorkYears(bracket string) float64 {
	return a.WorkYearsLeft[bracket]
}

// InterventionCost returns the annual intervention spend assumed for a
// bracket; missing brackets count as 0, which leaves the bracket's ROI
// undefined rather than wrong.
func (a Assumptions) InterventionCost(bracket string) float64 {
	return a.InterventionCostByAge[bracket]
}
