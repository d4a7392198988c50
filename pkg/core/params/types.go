// Package params defines the lease contract, property and cost-ratio
// parameter groups shared by the calculation engine, plus the typed
// registry the sensitivity runner uses to address single parameters.
package params

// =============================================================================
// PARAMETER GROUPS
// =============================================================================

// Contract holds the lease contract terms.
type Contract struct {
	Duration           int     `json:"contract_duration"`      // years
	GracePeriod        int     `json:"grace_period"`           // rent-free years at the start
	IncreaseInterval   int     `json:"rent_increase_interval"` // years between step-ups
	IncreaseRate       float64 `json:"rent_increase_rate"`     // % applied at each step-up
	CapitalizationRate float64 `json:"capitalization_rate"`    // % annual discount rate
}

// Property holds the land and construction figures.
type Property struct {
	LandArea                 float64 `json:"land_area"` // m²
	BuildingFactor           float64 `json:"building_factor"`
	BuildingRatio            float64 `json:"building_ratio"` // % footprint coverage
	ConstructionCostPerSqm   float64 `json:"construction_cost_per_sqm"`
	LandscapingCostPerSqm    float64 `json:"landscaping_cost_per_sqm"`
	InfrastructureCostPerSqm float64 `json:"infrastructure_cost_per_sqm"`
	DevelopmentYears         int     `json:"development_years"` // informational, not used in cash flows
}

// CostRatios holds the soft-cost percentages applied on top of basic costs.
type CostRatios struct {
	DesignRatio      float64 `json:"design_cost_ratio"`      // %
	SupervisionRatio float64 `json:"supervision_cost_ratio"` // %
	ContingencyRatio float64 `json:"contingency_cost_ratio"` // %
}

// Inputs bundles the three parameter groups for one calculation run.
type Inputs struct {
	Contract   Contract   `json:"contract"`
	Property   Property   `json:"property"`
	CostRatios CostRatios `json:"cost_ratios"`
}

// Clone returns an independent copy of the inputs. Every field is a plain
// value, so a shallow copy is a full copy; sensitivity sweeps mutate the
// clone and never the caller's inputs.
func (in Inputs) Clone() Inputs {
	return in
}

// DefaultInputs returns the reference dataset used by the CLI demo and tests:
// a 20-year lease on a 10,000 m² plot.
func DefaultInputs() Inputs {
	return Inputs{
		Contract: Contract{
			Duration:           20,
			GracePeriod:        2,
			IncreaseInterval:   5,
			IncreaseRate:       10.0,
			CapitalizationRate: 7.0,
		},
		Property: Property{
			LandArea:                 10000.0,
			BuildingFactor:           2.5,
			BuildingRatio:            60.0,
			ConstructionCostPerSqm:   2000.0,
			LandscapingCostPerSqm:    500.0,
			InfrastructureCostPerSqm: 3000.0,
			DevelopmentYears:         2,
		},
		CostRatios: CostRatios{
			DesignRatio:      7.0,
			SupervisionRatio: 5.0,
			ContingencyRatio: 2.0,
		},
	}
}
