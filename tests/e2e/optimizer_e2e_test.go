package e2e_test

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costing"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/report"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/scenario"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/sensitivity"
)

// Full pipeline over the default dataset: costs, search, metrics,
// export, reload.
func TestE2E_DefaultRunExportReload(t *testing.T) {
	fmt.Println(">>> Step 1: Validating the default dataset...")
	in := params.DefaultInputs()
	if err := params.Validate(in); err != nil {
		t.Fatalf("Default dataset rejected: %v", err)
	}

	fmt.Println(">>> Step 2: Computing development costs...")
	costs := costing.Compute(in.Property, in.CostRatios)
	fmt.Printf("   Basic: %.0f, Additional: %.0f, Total: %.0f\n",
		costs.BasicCosts, costs.TotalAdditionalCosts, costs.TotalDevelopmentCost)
	if costs.TotalDevelopmentCost != 93480000.0 {
		t.Fatalf("Expected total cost 93,480,000, got %f", costs.TotalDevelopmentCost)
	}

	fmt.Println(">>> Step 3: Searching for the optimal rent...")
	res := optimizer.NewOptimizer().FindOptimalRent(in, optimizer.Options{})
	fmt.Printf("   Rent: %.2f after %d iterations, NPV: %.2f\n",
		res.OptimalAnnualRent, res.Iterations, res.NPV)
	if res.NPV < 0 {
		t.Fatalf("Optimal rent must keep NPV non-negative, got %f", res.NPV)
	}
	if math.Abs(res.OptimalAnnualRent-99999237.060546875) > 1e-6 {
		t.Errorf("Expected rent 99,999,237.06, got %f", res.OptimalAnnualRent)
	}
	if res.Iterations != 17 {
		t.Errorf("Expected 17 iterations, got %d", res.Iterations)
	}

	fmt.Println(">>> Step 4: Checking derived metrics...")
	fmt.Printf("   Payback: %.2f years, IRR: %.2f%%\n", res.PaybackPeriod, res.IRR)
	if math.Abs(res.PaybackPeriod-3.1553414587614244) > 1e-6 {
		t.Errorf("Expected payback ~3.155, got %f", res.PaybackPeriod)
	}
	if math.Abs(res.IRR-48.94315373060844) > 1e-5 {
		t.Errorf("Expected IRR ~48.94, got %f", res.IRR)
	}

	fmt.Println(">>> Step 5: Exporting the result document...")
	path := filepath.Join(t.TempDir(), "results.json")
	doc := report.NewExport(in, costs, res)
	if err := doc.WriteJSON(path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	fmt.Println(">>> Step 6: Reloading the export...")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	var reloaded report.Export
	if err := json.Unmarshal(content, &reloaded); err != nil {
		t.Fatalf("Failed to unmarshal export: %v", err)
	}

	if reloaded.Timestamp == "" {
		t.Error("Export lost its timestamp")
	}
	if reloaded.CalculatedCosts.TotalDevelopmentCost != costs.TotalDevelopmentCost {
		t.Errorf("Export changed the total cost: %f", reloaded.CalculatedCosts.TotalDevelopmentCost)
	}
	if reloaded.Results.OptimalAnnualRent != res.OptimalAnnualRent {
		t.Errorf("Export changed the optimal rent: %f", reloaded.Results.OptimalAnnualRent)
	}
	if len(reloaded.CashFlows) != 20 {
		t.Errorf("Expected 20 cash-flow rows after reload, got %d", len(reloaded.CashFlows))
	}
	if reloaded.Inputs.Contract.Duration != 20 {
		t.Errorf("Export lost the contract inputs: duration %d", reloaded.Inputs.Contract.Duration)
	}
}

// Scenario file with Hjson comments, then a parallel sweep on top of it.
func TestE2E_ScenarioAndSweep(t *testing.T) {
	fmt.Println(">>> Step 1: Writing a scenario file...")
	path := filepath.Join(t.TempDir(), "downtown.hjson")
	content := `{
  // 25-year ground lease, 3 rent-free construction years
  contract: {
    contract_duration: 25
    grace_period: 3
  }
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scenario: %v", err)
	}

	fmt.Println(">>> Step 2: Loading the scenario...")
	in, err := scenario.Load(path)
	if err != nil {
		t.Fatalf("Scenario load failed: %v", err)
	}
	if in.Contract.Duration != 25 || in.Contract.GracePeriod != 3 {
		t.Fatalf("Scenario overrides lost: %+v", in.Contract)
	}
	if in.Property.LandArea != 10000.0 {
		t.Errorf("Unmentioned fields must keep defaults, land_area %f", in.Property.LandArea)
	}

	fmt.Println(">>> Step 3: Optimizing the scenario...")
	res := optimizer.NewOptimizer().FindOptimalRent(in, optimizer.Options{})
	fmt.Printf("   Rent: %.2f, NPV: %.2f, Payback: %.2f\n",
		res.OptimalAnnualRent, res.NPV, res.PaybackPeriod)
	if res.NPV < 0 {
		t.Fatalf("Scenario run produced negative NPV: %f", res.NPV)
	}
	if len(res.CashFlows) != 25 {
		t.Errorf("Expected 25 schedule rows, got %d", len(res.CashFlows))
	}
	for y := 0; y < 3; y++ {
		if res.CashFlows[y].AnnualRent != 0 {
			t.Errorf("Grace year %d must be rent free, got %f", y+1, res.CashFlows[y].AnnualRent)
		}
	}

	fmt.Println(">>> Step 4: Sweeping the increase rate in parallel...")
	values := []float64{5, 10, 15}
	points, err := sensitivity.NewRunner().RunParallel(params.DefaultInputs(), "rent_increase_rate", values, 2)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("Expected 3 sweep points, got %d", len(points))
	}
	for i, p := range points {
		fmt.Printf("   rate=%.0f%% -> NPV %.2f\n", p.Value, p.Result.NPV)
		if p.Value != values[i] {
			t.Errorf("Point %d out of order: value %f", i, p.Value)
		}
	}

	// Steeper step-ups add rent in later years, nothing else changes:
	// NPV must rise strictly across the sweep.
	if !(points[0].Result.NPV < points[1].Result.NPV && points[1].Result.NPV < points[2].Result.NPV) {
		t.Errorf("NPV must increase with the step-up rate: %f, %f, %f",
			points[0].Result.NPV, points[1].Result.NPV, points[2].Result.NPV)
	}

	// The middle point is the default dataset itself.
	if math.Abs(points[1].Result.NPV-876376638.35) > 1.0 {
		t.Errorf("Default-rate point should match the reference NPV, got %f", points[1].Result.NPV)
	}
}
