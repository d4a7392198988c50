// Package sensitivity sweeps a single parameter across candidate values
// and reruns the rent optimization for each one.
package sensitivity

import (
	"fmt"
	"sync"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costing"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
)

// Point is one sweep entry: the varied value and the optimization
// result computed with it.
type Point struct {
	Parameter string           `json:"parameter"`
	Value     float64          `json:"value"`
	Result    optimizer.Result `json:"result"`
}

// Runner executes sensitivity sweeps. Every run works on a clone of the
// base inputs, so the caller's parameters never change and sweeps are
// safe to run concurrently.
type Runner struct {
	costs *costing.Cache
	opts  optimizer.Options
}

// NewRunner creates a runner with a shared costing cache and default
// optimizer options.
func NewRunner() *Runner {
	return &Runner{costs: costing.NewCache()}
}

// NewRunnerWithOptions overrides the optimizer options used per run.
func NewRunnerWithOptions(opts optimizer.Options) *Runner {
	return &Runner{costs: costing.NewCache(), opts: opts}
}

// Run sweeps the named parameter across values in order. The parameter
// is resolved through the registry (contract first, then property, then
// cost ratios); an unknown name fails before any work starts.
func (r *Runner) Run(base params.Inputs, name string, values []float64) ([]Point, error) {
	field, err := params.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("sensitivity: %w", err)
	}

	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = r.runOne(base, field, v)
	}
	return points, nil
}

// RunParallel is Run fanned across a bounded worker pool. Output order
// still matches the input value order.
func (r *Runner) RunParallel(base params.Inputs, name string, values []float64, workers int) ([]Point, error) {
	field, err := params.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("sensitivity: %w", err)
	}
	if workers < 1 {
		workers = 1
	}

	points := make([]Point, len(values))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, v := range values {
		wg.Add(1)
		go func(i int, v float64) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			points[i] = r.runOne(base, field, v)
		}(i, v)
	}
	wg.Wait()

	return points, nil
}

// runOne clones the base inputs, applies the varied value and optimizes.
func (r *Runner) runOne(base params.Inputs, field *params.Field, value float64) Point {
	in := base.Clone()
	field.Set(&in, value)

	opt := optimizer.NewOptimizerWithCache(r.costs)
	return Point{
		Parameter: field.Name,
		Value:     value,
		Result:    opt.FindOptimalRent(in, r.opts),
	}
}
