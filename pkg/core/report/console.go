package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costing"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
)

// consoleRows caps the schedule preview printed to the terminal.
const consoleRows = 5

// WriteConsole prints the run summary the CLI shows after a calculation.
func WriteConsole(w io.Writer, costs costing.Breakdown, res optimizer.Result) {
	fmt.Fprintln(w, "🏗️  Real Estate Rent Calculator")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	fmt.Fprintf(w, "[COSTS] Total development cost: %.0f\n", costs.TotalDevelopmentCost)
	fmt.Fprintf(w, "[COSTS] Buildable area: %.0f m²\n", costs.BuildableArea)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "📈 Optimization results:")
	fmt.Fprintf(w, "[RESULT] Optimal annual rent: %.0f\n", res.OptimalAnnualRent)
	fmt.Fprintf(w, "[RESULT] NPV: %.0f\n", res.NPV)
	fmt.Fprintf(w, "[RESULT] Payback period: %.1f years\n", res.PaybackPeriod)
	fmt.Fprintf(w, "[RESULT] IRR: %.2f%%\n", res.IRR)
	fmt.Fprintf(w, "[RESULT] Total returns: %.0f\n", res.TotalReturns)
	fmt.Fprintf(w, "[RESULT] Iterations: %d\n", res.Iterations)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "💰 Cash flows (first %d years):\n", consoleRows)
	fmt.Fprintln(w, strings.Repeat("-", 64))
	fmt.Fprintf(w, "%-6s %16s %16s %16s\n", "Year", "Annual Rent", "Discounted", "Cumulative")
	fmt.Fprintln(w, strings.Repeat("-", 64))

	for i, row := range res.CashFlows {
		if i >= consoleRows {
			break
		}
		fmt.Fprintf(w, "%-6d %16.0f %16.0f %16.0f\n", row.Year, row.AnnualRent, row.DiscountedCashFlow, row.CumulativeCashFlow)
	}
}
