package params

import (
	"fmt"
	"strings"
)

// =============================================================================
// BOUNDARY VALIDATION
// Rejects out-of-range inputs at the edges (API, scenario files, CLI).
// The numeric core assumes validated inputs and never re-checks them.
// =============================================================================

// Check collects every boundary violation in one pass.
// A zero-length return means the inputs are usable.
func Check(in Inputs) []string {
	var issues []string

	c := in.Contract
	if c.Duration < 0 {
		issues = append(issues, fmt.Sprintf("contract_duration must be >= 0, got %d", c.Duration))
	}
	if c.GracePeriod < 0 {
		issues = append(issues, fmt.Sprintf("grace_period must be >= 0, got %d", c.GracePeriod))
	}
	if c.Duration > 0 && c.GracePeriod >= c.Duration {
		issues = append(issues, fmt.Sprintf("grace_period (%d) must be shorter than contract_duration (%d)", c.GracePeriod, c.Duration))
	}
	if c.IncreaseInterval < 1 {
		issues = append(issues, fmt.Sprintf("rent_increase_interval must be >= 1, got %d", c.IncreaseInterval))
	}
	if c.CapitalizationRate <= -100 {
		issues = append(issues, fmt.Sprintf("capitalization_rate must be > -100, got %g", c.CapitalizationRate))
	}

	p := in.Property
	if p.LandArea <= 0 {
		issues = append(issues, fmt.Sprintf("land_area must be > 0, got %g", p.LandArea))
	}
	if p.BuildingFactor < 0 {
		issues = append(issues, fmt.Sprintf("building_factor must be >= 0, got %g", p.BuildingFactor))
	}
	if p.BuildingRatio < 0 || p.BuildingRatio > 100 {
		issues = append(issues, fmt.Sprintf("building_ratio must be in [0, 100], got %g", p.BuildingRatio))
	}
	if p.ConstructionCostPerSqm < 0 {
		issues = append(issues, fmt.Sprintf("construction_cost_per_sqm must be >= 0, got %g", p.ConstructionCostPerSqm))
	}
	if p.LandscapingCostPerSqm < 0 {
		issues = append(issues, fmt.Sprintf("landscaping_cost_per_sqm must be >= 0, got %g", p.LandscapingCostPerSqm))
	}
	if p.InfrastructureCostPerSqm < 0 {
		issues = append(issues, fmt.Sprintf("infrastructure_cost_per_sqm must be >= 0, got %g", p.InfrastructureCostPerSqm))
	}
	if p.DevelopmentYears < 0 {
		issues = append(issues, fmt.Sprintf("development_years must be >= 0, got %d", p.DevelopmentYears))
	}

	r := in.CostRatios
	if r.DesignRatio < 0 {
		issues = append(issues, fmt.Sprintf("design_cost_ratio must be >= 0, got %g", r.DesignRatio))
	}
	if r.SupervisionRatio < 0 {
		issues = append(issues, fmt.Sprintf("supervision_cost_ratio must be >= 0, got %g", r.SupervisionRatio))
	}
	if r.ContingencyRatio < 0 {
		issues = append(issues, fmt.Sprintf("contingency_cost_ratio must be >= 0, got %g", r.ContingencyRatio))
	}

	return issues
}

// Validate wraps Check into a single error for handler and loader code.
func Validate(in Inputs) error {
	issues := Check(in)
	if len(issues) == 0 {
		return nil
	}
	return fmt.Errorf("invalid parameters: %s", strings.Join(issues, "; "))
}
