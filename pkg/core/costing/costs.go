// Package costing computes the one-time development cost of a lease
// project from the property figures and soft-cost ratios.
package costing

import (
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
)

// Breakdown itemizes the development cost build-up.
type Breakdown struct {
	BuildableArea        float64 `json:"buildable_area"` // m²
	RemainingArea        float64 `json:"remaining_area"` // m²
	ConstructionCost     float64 `json:"construction_cost"`
	LandscapingCost      float64 `json:"landscaping_cost"`
	InfrastructureCost   float64 `json:"infrastructure_cost"`
	BasicCosts           float64 `json:"basic_costs"`
	DesignCost           float64 `json:"design_cost"`
	SupervisionCost      float64 `json:"supervision_cost"`
	ContingencyCost      float64 `json:"contingency_cost"`
	TotalAdditionalCosts float64 `json:"total_additional_costs"`
	TotalDevelopmentCost float64 `json:"total_development_cost"`
}

// Compute derives the full cost breakdown. Pure function: identical
// inputs always yield an identical breakdown, so results are cacheable
// by input value alone.
func Compute(prop params.Property, ratios params.CostRatios) Breakdown {
	// 1. Areas
	buildable := prop.LandArea * prop.BuildingFactor
	remaining := prop.LandArea * (1 - prop.BuildingRatio/100)

	// 2. Basic costs (construction first, then landscaping, then infrastructure)
	construction := buildable * prop.ConstructionCostPerSqm
	landscaping := remaining * prop.LandscapingCostPerSqm
	infrastructure := prop.LandArea * prop.InfrastructureCostPerSqm
	basic := construction + landscaping + infrastructure

	// 3. Soft costs as percentages of the basic total
	design := basic * (ratios.DesignRatio / 100)
	supervision := basic * (ratios.SupervisionRatio / 100)
	contingency := basic * (ratios.ContingencyRatio / 100)
	additional := design + supervision + contingency

	return Breakdown{
		BuildableArea:        buildable,
		RemainingArea:        remaining,
		ConstructionCost:     construction,
		LandscapingCost:      landscaping,
		InfrastructureCost:   infrastructure,
		BasicCosts:           basic,
		DesignCost:           design,
		SupervisionCost:      supervision,
		ContingencyCost:      contingency,
		TotalAdditionalCosts: additional,
		TotalDevelopmentCost: basic + additional,
	}
}
