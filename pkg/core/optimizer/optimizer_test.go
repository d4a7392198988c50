package optimizer

import (
	"math"
	"testing"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/cashflow"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costing"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
)

func TestFindOptimalRentReferenceScenario(t *testing.T) {
	// Default dataset: total cost 93,480,000, 18 paying years. The NPV
	// at the 100M ceiling is still positive, so the search walks the
	// lower bound up to the ceiling: 100M * (1 - 2^-17) after 17 halvings.
	in := params.DefaultInputs()
	res := NewOptimizer().FindOptimalRent(in, Options{})

	if res.TotalDevelopmentCost != 93480000.0 {
		t.Errorf("Expected total cost 93,480,000, got %f", res.TotalDevelopmentCost)
	}
	if res.Iterations != 17 {
		t.Errorf("Expected 17 bisection iterations, got %d", res.Iterations)
	}
	if math.Abs(res.OptimalAnnualRent-99999237.060546875) > 1e-6 {
		t.Errorf("Expected optimal rent 99,999,237.06, got %f", res.OptimalAnnualRent)
	}
	if res.NPV < 0 {
		t.Errorf("Optimal rent must keep NPV non-negative, got %f", res.NPV)
	}
	if math.Abs(res.NPV-876376638.35) > 1.0 {
		t.Errorf("Expected NPV ~876,376,638, got %f", res.NPV)
	}
	if math.Abs(res.PaybackPeriod-3.1553414587614244) > 1e-6 {
		t.Errorf("Expected payback ~3.155, got %f", res.PaybackPeriod)
	}
	if math.Abs(res.IRR-48.94315373060844) > 1e-5 {
		t.Errorf("Expected IRR ~48.94, got %f", res.IRR)
	}
	if math.Abs(res.TotalReturns-2054284326.93) > 1.0 {
		t.Errorf("Expected total returns ~2,054,284,327, got %f", res.TotalReturns)
	}
	if math.Abs(res.AverageAnnualReturn-res.TotalReturns/20.0) > 1e-6 {
		t.Errorf("Average annual return must be total/20, got %f", res.AverageAnnualReturn)
	}
	if len(res.CashFlows) != 20 {
		t.Fatalf("Expected 20 schedule rows, got %d", len(res.CashFlows))
	}
	if res.CashFlows[0].AnnualRent != 0 || res.CashFlows[1].AnnualRent != 0 {
		t.Error("Grace years must carry zero rent in the reported schedule")
	}
	if math.Abs(res.CashFlows[2].AnnualRent-res.OptimalAnnualRent) > 1e-6 {
		t.Errorf("Year 3 must carry the base rent, got %f", res.CashFlows[2].AnnualRent)
	}
}

func TestFindOptimalRentInfeasibleProject(t *testing.T) {
	// A plot so expensive that even the rent ceiling cannot recover it.
	// The search never updates the lower bound and reports rent 0 with
	// the honest deficit instead of a sentinel.
	in := params.DefaultInputs()
	in.Property.LandArea = 1e9

	res := NewOptimizer().FindOptimalRent(in, Options{})

	if res.OptimalAnnualRent != 0 {
		t.Errorf("Expected optimal rent 0 for infeasible project, got %f", res.OptimalAnnualRent)
	}
	if res.NPV != -res.TotalDevelopmentCost {
		t.Errorf("Expected NPV == -total cost, got %f vs %f", res.NPV, -res.TotalDevelopmentCost)
	}
	if res.Iterations != 17 {
		t.Errorf("Expected 17 iterations, got %d", res.Iterations)
	}
	if res.PaybackPeriod != 20.0 {
		t.Errorf("Expected payback == duration for unrecovered cost, got %f", res.PaybackPeriod)
	}
	if res.TotalReturns != 0 {
		t.Errorf("Expected zero returns at rent 0, got %f", res.TotalReturns)
	}
}

func TestFindOptimalRentZeroDuration(t *testing.T) {
	// No years means no inflows: rent 0, empty schedule, NPV = -cost.
	in := params.DefaultInputs()
	in.Contract.Duration = 0
	in.Contract.GracePeriod = 0

	res := NewOptimizer().FindOptimalRent(in, Options{})

	if res.OptimalAnnualRent != 0 {
		t.Errorf("Expected rent 0 for zero-duration contract, got %f", res.OptimalAnnualRent)
	}
	if res.NPV != -93480000.0 {
		t.Errorf("Expected NPV -93,480,000, got %f", res.NPV)
	}
	if len(res.CashFlows) != 0 {
		t.Errorf("Expected empty schedule, got %d rows", len(res.CashFlows))
	}
	if res.PaybackPeriod != 0 {
		t.Errorf("Expected payback 0 for zero duration, got %f", res.PaybackPeriod)
	}
	if res.AverageAnnualReturn != 0 {
		t.Errorf("Expected zero average return, got %f", res.AverageAnnualReturn)
	}
}

func TestFindOptimalRentTighterTolerance(t *testing.T) {
	// Halving from 100M down to a 10-unit window takes 24 iterations.
	in := params.DefaultInputs()
	res := NewOptimizer().FindOptimalRent(in, Options{Tolerance: 10})

	if res.Iterations != 24 {
		t.Errorf("Expected 24 iterations at tolerance 10, got %d", res.Iterations)
	}
}

func TestFindOptimalRentIterationCap(t *testing.T) {
	in := params.DefaultInputs()
	res := NewOptimizer().FindOptimalRent(in, Options{Tolerance: 1e-9, MaxIterations: 5})

	if res.Iterations != 5 {
		t.Errorf("Expected iteration cap 5 to bind, got %d", res.Iterations)
	}
}

func TestOptimizerSharesCostingCache(t *testing.T) {
	cache := costing.NewCache()
	opt := NewOptimizerWithCache(cache)
	in := params.DefaultInputs()

	opt.FindOptimalRent(in, Options{})
	opt.FindOptimalRent(in, Options{})

	if cache.Len() != 1 {
		t.Errorf("Expected one cached breakdown for repeated identical inputs, got %d", cache.Len())
	}

	varied := in.Clone()
	varied.Property.LandArea = 12000.0
	opt.FindOptimalRent(varied, Options{})

	if cache.Len() != 2 {
		t.Errorf("Expected second cache entry for varied inputs, got %d", cache.Len())
	}
}

func TestFindOptimalRentConvenience(t *testing.T) {
	res := FindOptimalRent(params.DefaultInputs())
	if res.Iterations != 17 {
		t.Errorf("Expected default options through the convenience call, got %d iterations", res.Iterations)
	}
}

func TestNPVMonotoneAcrossRents(t *testing.T) {
	// The feasibility boundary the bisection relies on: NPV never
	// decreases as rent grows, holding everything else fixed.
	in := params.DefaultInputs()
	cost := costing.Compute(in.Property, in.CostRatios).TotalDevelopmentCost

	rents := []float64{0, 1e5, 1e6, 5e6, 1e7, 5e7, 1e8}
	prev := math.Inf(-1)
	for _, rent := range rents {
		p := cashflow.Project(in.Contract, cost, rent)
		if p.NPV < prev {
			t.Errorf("NPV decreased from %f to %f at rent %f", prev, p.NPV, rent)
		}
		prev = p.NPV
	}
}
