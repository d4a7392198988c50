// Package cashflow builds the year-by-year discounted rent schedule for
// a lease and its net present value against the development cost.
package cashflow

import (
	"math"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
)

// Year is one row of the lease cash-flow schedule.
type Year struct {
	Year                int     `json:"year"`
	AnnualRent          float64 `json:"annual_rent"`
	DiscountedCashFlow  float64 `json:"discounted_cash_flow"`
	CumulativeCashFlow  float64 `json:"cumulative_cash_flow"`
	IncreaseRateApplied float64 `json:"rent_increase_rate"` // % applied this year, 0 otherwise
}

// Projection holds the NPV and the full schedule for one rent level.
type Projection struct {
	NPV   float64
	Years []Year
}

// Project runs the lease schedule for a base annual rent against the
// given up-front development cost.
//
// Rent starts after the grace period and steps up by the contract rate
// every increase interval. The first rent-paying year is never stepped;
// the interval counts from that year. All inflows are discounted at the
// capitalization rate.
func Project(contract params.Contract, totalCost, baseRent float64) Projection {
	// 1. Open the position at the full development cost
	npv := -totalCost
	cumulative := -totalCost
	years := make([]Year, 0, max(contract.Duration, 0))

	currentRent := baseRent

	for year := 1; year <= contract.Duration; year++ {
		yearlyRent := 0.0
		increaseApplied := 0.0

		// 2. Rent is due once the grace period has passed
		if year > contract.GracePeriod {
			yearlyRent = currentRent

			// 3. Periodic step-up, skipping the first rent-paying year
			if (year-contract.GracePeriod-1)%contract.IncreaseInterval == 0 && year > contract.GracePeriod+1 {
				increaseApplied = contract.IncreaseRate
				currentRent *= 1 + contract.IncreaseRate/100
				yearlyRent = currentRent
			}
		}

		// 4. Discount at the capitalization rate
		discountFactor := math.Pow(1+contract.CapitalizationRate/100, float64(year))
		discounted := yearlyRent / discountFactor

		npv += discounted
		cumulative += discounted

		years = append(years, Year{
			Year:                year,
			AnnualRent:          yearlyRent,
			DiscountedCashFlow:  discounted,
			CumulativeCashFlow:  cumulative,
			IncreaseRateApplied: increaseApplied,
		})
	}

	return Projection{NPV: npv, Years: years}
}
