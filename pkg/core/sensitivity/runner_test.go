package sensitivity

import (
	"math"
	"testing"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
)

func TestRunUnknownParameter(t *testing.T) {
	r := NewRunner()
	if _, err := r.Run(params.DefaultInputs(), "vacancy_rate", []float64{1, 2}); err == nil {
		t.Error("Expected error for unknown parameter, got nil")
	}
}

func TestRunLeavesBaseUntouched(t *testing.T) {
	r := NewRunner()
	base := params.DefaultInputs()

	if _, err := r.Run(base, "land_area", []float64{5000, 12000, 20000}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if base.Property.LandArea != 10000.0 {
		t.Errorf("Sweep mutated the base inputs: land_area now %f", base.Property.LandArea)
	}
}

func TestRunTagsAndOrder(t *testing.T) {
	r := NewRunner()
	values := []float64{5000, 10000, 12000}

	points, err := r.Run(params.DefaultInputs(), "land_area", values)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(points))
	}

	for i, p := range points {
		if p.Parameter != "land_area" {
			t.Errorf("Point %d: expected parameter land_area, got %s", i, p.Parameter)
		}
		if p.Value != values[i] {
			t.Errorf("Point %d: expected value %f, got %f", i, values[i], p.Value)
		}
	}

	// 10,000 m² is the reference project; 12,000 m² was hand-computed in
	// the costing tests.
	if points[1].Result.TotalDevelopmentCost != 93480000.0 {
		t.Errorf("Expected cost 93,480,000 at 10,000 m², got %f", points[1].Result.TotalDevelopmentCost)
	}
	if points[2].Result.TotalDevelopmentCost != 112176000.0 {
		t.Errorf("Expected cost 112,176,000 at 12,000 m², got %f", points[2].Result.TotalDevelopmentCost)
	}
}

func TestRunIntegerParameter(t *testing.T) {
	r := NewRunner()
	points, err := r.Run(params.DefaultInputs(), "contract_duration", []float64{10, 15, 20})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for i, wantYears := range []int{10, 15, 20} {
		if got := len(points[i].Result.CashFlows); got != wantYears {
			t.Errorf("Duration %d: expected %d schedule rows, got %d", wantYears, wantYears, got)
		}
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	values := []float64{4.0, 5.5, 7.0, 8.5, 10.0}

	seq, err := NewRunner().Run(params.DefaultInputs(), "capitalization_rate", values)
	if err != nil {
		t.Fatalf("Sequential run failed: %v", err)
	}
	par, err := NewRunner().RunParallel(params.DefaultInputs(), "capitalization_rate", values, 3)
	if err != nil {
		t.Fatalf("Parallel run failed: %v", err)
	}

	if len(seq) != len(par) {
		t.Fatalf("Length mismatch: %d vs %d", len(seq), len(par))
	}
	for i := range seq {
		if par[i].Value != seq[i].Value {
			t.Errorf("Point %d: value order differs: %f vs %f", i, par[i].Value, seq[i].Value)
		}
		if math.Abs(par[i].Result.NPV-seq[i].Result.NPV) > 1e-9 {
			t.Errorf("Point %d: NPV differs between modes: %f vs %f", i, par[i].Result.NPV, seq[i].Result.NPV)
		}
		if par[i].Result.OptimalAnnualRent != seq[i].Result.OptimalAnnualRent {
			t.Errorf("Point %d: rent differs between modes", i)
		}
	}
}

func TestRunSharesCostBreakdownAcrossContractSweep(t *testing.T) {
	// Varying a contract parameter leaves property and ratios unchanged,
	// so a single memoized breakdown serves the whole sweep.
	r := NewRunner()
	if _, err := r.Run(params.DefaultInputs(), "rent_increase_rate", []float64{0, 5, 10, 15}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if r.costs.Len() != 1 {
		t.Errorf("Expected one cached breakdown across a contract sweep, got %d", r.costs.Len())
	}
}
