package report

import (
	"fmt"
	"strings"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costing"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/utils"
)

// Markdown renders a full run report as a Markdown document with the
// cost breakdown and cash-flow schedule as tables.
func Markdown(in params.Inputs, costs costing.Breakdown, res optimizer.Result) string {
	var b strings.Builder

	b.WriteString("# Rent Optimization Report\n\n")

	b.WriteString("## Contract\n\n")
	fmt.Fprintf(&b, "- Duration: %d years (grace %d)\n", in.Contract.Duration, in.Contract.GracePeriod)
	fmt.Fprintf(&b, "- Rent increase: %.1f%% every %d years\n", in.Contract.IncreaseRate, in.Contract.IncreaseInterval)
	fmt.Fprintf(&b, "- Capitalization rate: %.2f%%\n\n", in.Contract.CapitalizationRate)

	b.WriteString("## Development Costs\n\n")
	b.WriteString("| Item | Value |\n|------|-------|\n")
	fmt.Fprintf(&b, "| Buildable area | %.0f m² |\n", costs.BuildableArea)
	fmt.Fprintf(&b, "| Remaining area | %.0f m² |\n", costs.RemainingArea)
	fmt.Fprintf(&b, "| Construction | %.0f |\n", costs.ConstructionCost)
	fmt.Fprintf(&b, "| Landscaping | %.0f |\n", costs.LandscapingCost)
	fmt.Fprintf(&b, "| Infrastructure | %.0f |\n", costs.InfrastructureCost)
	fmt.Fprintf(&b, "| Basic costs | %.0f |\n", costs.BasicCosts)
	fmt.Fprintf(&b, "| Design | %.0f |\n", costs.DesignCost)
	fmt.Fprintf(&b, "| Supervision | %.0f |\n", costs.SupervisionCost)
	fmt.Fprintf(&b, "| Contingency | %.0f |\n", costs.ContingencyCost)
	fmt.Fprintf(&b, "| **Total** | **%.0f** |\n\n", costs.TotalDevelopmentCost)

	b.WriteString("## Results\n\n")
	b.WriteString("| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(&b, "| Optimal annual rent | %.0f |\n", res.OptimalAnnualRent)
	fmt.Fprintf(&b, "| NPV | %.0f |\n", res.NPV)
	fmt.Fprintf(&b, "| Payback period | %.1f years |\n", res.PaybackPeriod)
	fmt.Fprintf(&b, "| IRR | %.2f%% |\n", res.IRR)
	fmt.Fprintf(&b, "| Total returns | %.0f |\n", res.TotalReturns)
	fmt.Fprintf(&b, "| Average annual return | %.0f |\n", res.AverageAnnualReturn)
	fmt.Fprintf(&b, "| Iterations | %d |\n\n", res.Iterations)

	b.WriteString("## Cash Flow Schedule\n\n")
	b.WriteString("| Year | Annual Rent | Discounted | Cumulative | Step-Up |\n")
	b.WriteString("|------|-------------|------------|------------|--------|\n")
	for _, row := range res.CashFlows {
		step := ""
		if row.IncreaseRateApplied > 0 {
			step = fmt.Sprintf("+%.1f%%", row.IncreaseRateApplied)
		}
		fmt.Fprintf(&b, "| %d | %.0f | %.0f | %.0f | %s |\n", row.Year, row.AnnualRent, row.DiscountedCashFlow, row.CumulativeCashFlow, step)
	}

	return b.String()
}

// HTML renders the Markdown report as an HTML fragment.
func HTML(in params.Inputs, costs costing.Breakdown, res optimizer.Result) (string, error) {
	return utils.RenderHTML(Markdown(in, costs, res))
}
