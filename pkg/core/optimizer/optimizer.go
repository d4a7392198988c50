// Package optimizer searches for the highest annual rent that keeps
// the lease NPV non-negative over the contract.
package optimizer

import (
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/cashflow"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costing"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/metrics"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
)

const (
	// DefaultTolerance is the bisection stopping width in currency units.
	DefaultTolerance = 1000.0
	// DefaultMaxIterations caps the bisection loop.
	DefaultMaxIterations = 100

	// RentCeiling is the fixed upper search bound. Projects whose
	// break-even rent exceeds it silently report the ceiling region;
	// nothing realistic gets near 100M/year.
	RentCeiling = 100_000_000.0
)

// Options tune the bisection search. Zero values fall back to the
// package defaults.
type Options struct {
	Tolerance     float64
	MaxIterations int
}

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// Result carries the optimum and its full metric set.
type Result struct {
	OptimalAnnualRent    float64         `json:"optimal_annual_rent"`
	NPV                  float64         `json:"npv"`
	PaybackPeriod        float64         `json:"payback_period"`
	IRR                  float64         `json:"irr"`
	TotalReturns         float64         `json:"total_returns"`
	AverageAnnualReturn  float64         `json:"average_annual_return"`
	TotalDevelopmentCost float64         `json:"total_development_cost"`
	Iterations           int             `json:"iterations"`
	CashFlows            []cashflow.Year `json:"cash_flows"`
}

// Optimizer runs rent searches against a shared costing cache, so
// repeated runs over the same property reuse the cost breakdown.
type Optimizer struct {
	costs *costing.Cache
}

// NewOptimizer creates an optimizer with its own costing cache.
func NewOptimizer() *Optimizer {
	return &Optimizer{costs: costing.NewCache()}
}

// NewOptimizerWithCache shares an existing costing cache, for example
// across a sensitivity sweep.
func NewOptimizerWithCache(cache *costing.Cache) *Optimizer {
	return &Optimizer{costs: cache}
}

// Costs returns the memoized development cost breakdown for the inputs.
func (o *Optimizer) Costs(in params.Inputs) costing.Breakdown {
	return o.costs.Get(in.Property, in.CostRatios)
}

// FindOptimalRent bisects [0, 100M] for the highest rent whose NPV is
// still non-negative.
//
// When even zero rent cannot recover the cost, the result reports rent
// 0 with its honest negative NPV, so infeasible projects are visible
// instead of hidden behind a sentinel.
func (o *Optimizer) FindOptimalRent(in params.Inputs, opts Options) Result {
	opts = opts.withDefaults()

	totalCost := o.Costs(in).TotalDevelopmentCost

	// 1. Bisect on the sign of the NPV
	low, high := 0.0, RentCeiling
	best := 0.0
	iterations := 0

	for high-low > opts.Tolerance && iterations < opts.MaxIterations {
		mid := (low + high) / 2
		p := cashflow.Project(in.Contract, totalCost, mid)

		if p.NPV >= 0 {
			best = mid
			low = mid
		} else {
			high = mid
		}
		iterations++
	}

	// 2. Re-project once at the chosen rent for the reported schedule
	final := cashflow.Project(in.Contract, totalCost, best)
	totalReturns := metrics.TotalReturns(final.Years)

	// 3. Derive the metric set
	return Result{
		OptimalAnnualRent:    best,
		NPV:                  final.NPV,
		PaybackPeriod:        metrics.PaybackPeriod(final.Years, in.Contract.Duration),
		IRR:                  metrics.IRR(totalCost, final.Years),
		TotalReturns:         totalReturns,
		AverageAnnualReturn:  metrics.AverageAnnualReturn(totalReturns, in.Contract.Duration),
		TotalDevelopmentCost: totalCost,
		Iterations:           iterations,
		CashFlows:            final.Years,
	}
}

// FindOptimalRent runs a one-shot search with default options.
func FindOptimalRent(in params.Inputs) Result {
	return NewOptimizer().FindOptimalRent(in, Options{})
}
