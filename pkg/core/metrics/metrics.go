// Package metrics derives investment figures from a projected lease
// schedule: payback period, internal rate of return and return totals.
package metrics

import (
	"math"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/cashflow"
)

// PaybackPeriod returns the point, in years, where the cumulative
// discounted flow first turns non-negative, interpolating linearly
// inside the crossing year. A schedule that never recovers returns the
// full contract duration.
func PaybackPeriod(years []cashflow.Year, duration int) float64 {
	for i, cf := range years {
		if cf.CumulativeCashFlow >= 0 {
			if i == 0 {
				return 1.0
			}
			prev := years[i-1]
			ratio := math.Abs(prev.CumulativeCashFlow) / (cf.CumulativeCashFlow - prev.CumulativeCashFlow)
			return float64(i) + ratio
		}
	}
	return float64(duration)
}

// IRR estimates the internal rate of return via Newton-Raphson over the
// nominal flows: the development cost up front, then each year's
// contractual rent. Returned as a percentage.
//
// Best effort on degenerate schedules: a flat derivative (for example
// all-zero rents) exits early and reports the last iterate, so callers
// always get a number.
func IRR(totalCost float64, years []cashflow.Year) float64 {
	flows := make([]float64, 0, len(years)+1)
	flows = append(flows, -totalCost)
	for _, cf := range years {
		flows = append(flows, cf.AnnualRent)
	}

	rate := 0.1

	for iter := 0; iter < 1000; iter++ {
		var npv, deriv float64
		for t, flow := range flows {
			factor := math.Pow(1+rate, float64(t))
			npv += flow / factor
			if t > 0 {
				deriv -= float64(t) * flow / math.Pow(1+rate, float64(t+1))
			}
		}

		if math.Abs(deriv) < 1e-10 {
			break
		}

		next := rate - npv/deriv
		if math.Abs(next-rate) < 1e-8 {
			rate = next
			break
		}
		rate = next

		// Keep the iterate inside the domain of (1+r)^t
		if rate < -0.99 {
			rate = -0.99
		}
	}

	return rate * 100
}

// TotalReturns sums the nominal (undiscounted) rent over the schedule.
func TotalReturns(years []cashflow.Year) float64 {
	total := 0.0
	for _, cf := range years {
		total += cf.AnnualRent
	}
	return total
}

// AverageAnnualReturn spreads the total nominal return over the
// contract duration. Zero-duration contracts report 0.
func AverageAnnualReturn(totalReturns float64, duration int) float64 {
	if duration <= 0 {
		return 0
	}
	return totalReturns / float64(duration)
}
