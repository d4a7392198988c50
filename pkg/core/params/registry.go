package params

import "fmt"

// =============================================================================
// PARAMETER REGISTRY
// Typed getter/setter pairs addressed by wire name. Sensitivity sweeps go
// through this table instead of reflection, so an unsupported name fails
// at lookup and integer fields keep their type.
// =============================================================================

// Group identifies which parameter block a field lives in.
type Group string

const (
	GroupContract   Group = "contract"
	GroupProperty   Group = "property"
	GroupCostRatios Group = "cost_ratios"
)

// Field binds a wire name to its typed accessor pair.
type Field struct {
	Name  string
	Group Group
	Get   func(*Inputs) float64
	Set   func(*Inputs, float64)
}

// fields lists every adjustable parameter: contract block first, then
// property, then cost ratios. Lookup resolves in this order.
var fields = []Field{
	{
		Name:  "contract_duration",
		Group: GroupContract,
		Get:   func(in *Inputs) float64 { return float64(in.Contract.Duration) },
		Set:   func(in *Inputs, v float64) { in.Contract.Duration = int(v) },
	},
	{
		Name:  "grace_period",
		Group: GroupContract,
		Get:   func(in *Inputs) float64 { return float64(in.Contract.GracePeriod) },
		Set:   func(in *Inputs, v float64) { in.Contract.GracePeriod = int(v) },
	},
	{
		Name:  "rent_increase_interval",
		Group: GroupContract,
		Get:   func(in *Inputs) float64 { return float64(in.Contract.IncreaseInterval) },
		Set:   func(in *Inputs, v float64) { in.Contract.IncreaseInterval = int(v) },
	},
	{
		Name:  "rent_increase_rate",
		Group: GroupContract,
		Get:   func(in *Inputs) float64 { return in.Contract.IncreaseRate },
		Set:   func(in *Inputs, v float64) { in.Contract.IncreaseRate = v },
	},
	{
		Name:  "capitalization_rate",
		Group: GroupContract,
		Get:   func(in *Inputs) float64 { return in.Contract.CapitalizationRate },
		Set:   func(in *Inputs, v float64) { in.Contract.CapitalizationRate = v },
	},
	{
		Name:  "land_area",
		Group: GroupProperty,
		Get:   func(in *Inputs) float64 { return in.Property.LandArea },
		Set:   func(in *Inputs, v float64) { in.Property.LandArea = v },
	},
	{
		Name:  "building_factor",
		Group: GroupProperty,
		Get:   func(in *Inputs) float64 { return in.Property.BuildingFactor },
		Set:   func(in *Inputs, v float64) { in.Property.BuildingFactor = v },
	},
	{
		Name:  "building_ratio",
		Group: GroupProperty,
		Get:   func(in *Inputs) float64 { return in.Property.BuildingRatio },
		Set:   func(in *Inputs, v float64) { in.Property.BuildingRatio = v },
	},
	{
		Name:  "construction_cost_per_sqm",
		Group: GroupProperty,
		Get:   func(in *Inputs) float64 { return in.Property.ConstructionCostPerSqm },
		Set:   func(in *Inputs, v float64) { in.Property.ConstructionCostPerSqm = v },
	},
	{
		Name:  "landscaping_cost_per_sqm",
		Group: GroupProperty,
		Get:   func(in *Inputs) float64 { return in.Property.LandscapingCostPerSqm },
		Set:   func(in *Inputs, v float64) { in.Property.LandscapingCostPerSqm = v },
	},
	{
		Name:  "infrastructure_cost_per_sqm",
		Group: GroupProperty,
		Get:   func(in *Inputs) float64 { return in.Property.InfrastructureCostPerSqm },
		Set:   func(in *Inputs, v float64) { in.Property.InfrastructureCostPerSqm = v },
	},
	{
		Name:  "development_years",
		Group: GroupProperty,
		Get:   func(in *Inputs) float64 { return float64(in.Property.DevelopmentYears) },
		Set:   func(in *Inputs, v float64) { in.Property.DevelopmentYears = int(v) },
	},
	{
		Name:  "design_cost_ratio",
		Group: GroupCostRatios,
		Get:   func(in *Inputs) float64 { return in.CostRatios.DesignRatio },
		Set:   func(in *Inputs, v float64) { in.CostRatios.DesignRatio = v },
	},
	{
		Name:  "supervision_cost_ratio",
		Group: GroupCostRatios,
		Get:   func(in *Inputs) float64 { return in.CostRatios.SupervisionRatio },
		Set:   func(in *Inputs, v float64) { in.CostRatios.SupervisionRatio = v },
	},
	{
		Name:  "contingency_cost_ratio",
		Group: GroupCostRatios,
		Get:   func(in *Inputs) float64 { return in.CostRatios.ContingencyRatio },
		Set:   func(in *Inputs, v float64) { in.CostRatios.ContingencyRatio = v },
	},
}

var fieldIndex = buildFieldIndex()

func buildFieldIndex() map[string]*Field {
	idx := make(map[string]*Field, len(fields))
	for i := range fields {
		idx[fields[i].Name] = &fields[i]
	}
	return idx
}

// Lookup resolves a parameter by wire name, e.g. "capitalization_rate".
func Lookup(name string) (*Field, error) {
	f, ok := fieldIndex[name]
	if !ok {
		return nil, fmt.Errorf("unknown parameter: %s", name)
	}
	return f, nil
}

// Names returns every registered parameter name in declaration order.
func Names() []string {
	names := make([]string, len(fields))
	for i := range fields {
		names[i] = fields[i].Name
	}
	return names
}
