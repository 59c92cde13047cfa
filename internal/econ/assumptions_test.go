package econ

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultAssumptions_CoverAllBrackets(t *testing.T) {
	a := DefaultAssumptions()
	brackets := []string{"0-9", "10-19", "20-29", "30-39", "40-49", "50-59", "60-69", "70-79", "80+"}

	for _, b := range brackets {
		if _, ok := a.SalaryByAge[b]; !ok {
			t.Errorf("salary table missing bracket %q", b)
		}
		if _, ok := a.WorkYearsLeft[b]; !ok {
			t.Errorf("work-years table missing bracket %q", b)
		}
		if _, ok := a.InterventionCostByAge[b]; !ok {
			t.Errorf("intervention-cost table missing bracket %q", b)
		}
	}
	if a.ReductionRate != 0.15 {
		t.Errorf("reduction rate = %v, want 0.15", a.ReductionRate)
	}
}

func TestLoadAssumptions_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assumptions.yaml")
	content := "reduction_rate: 0.25\nsalary_by_age:\n  \"20-29\": 3500000\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := LoadAssumptions(path)
	if err != nil {
		t.Fatalf("LoadAssumptions: %v", err)
	}
	if a.ReductionRate != 0.25 {
		t.Errorf("reduction rate = %v, want 0.25", a.ReductionRate)
	}
	if a.Salary("20-29") != 3_500_000 {
		t.Errorf("salary 20-29 = %v, want override 3,500,000", a.Salary("20-29"))
	}
	// Untouched sections keep their defaults.
	if a.WorkYears("20-29") != 35 {
		t.Errorf("work years 20-29 = %v, want default 35", a.WorkYears("20-29"))
	}
	if a.InterventionCost("20-29") != 5_000_000_000 {
		t.Errorf("intervention cost 20-29 = %v, want default", a.InterventionCost("20-29"))
	}
}

func TestLoadAssumptions_MissingFile(t *testing.T) {
	if _, err := LoadAssumptions(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAssumptions_MissingBracketDefaultsToZero(t *testing.T) {
	a := DefaultAssumptions()
	if a.Salary("0-19") != 0 || a.WorkYears("0-19") != 0 || a.InterventionCost("0-19") != 0 {
		t.Error("unlisted bracket must default to 0")
	}
}
