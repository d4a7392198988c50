package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/advisor"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costing"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/marketdata"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/report"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/scenario"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/sensitivity"

	"github.com/joho/godotenv"
)

func main() {
	scenarioPath := flag.String("scenario", "", "Scenario file (JSON or HJSON); defaults apply when omitted")
	exportPath := flag.String("export", "", "Write the full result document as JSON to this path")
	reportPath := flag.String("report", "", "Write a rendered report to this path")
	format := flag.String("format", "markdown", "Report format: markdown or html")
	param := flag.String("param", "", "Sensitivity parameter name (e.g. land_area)")
	values := flag.String("values", "", "Comma-separated sensitivity values")
	workers := flag.Int("workers", 1, "Parallel workers for the sensitivity sweep")
	tolerance := flag.Float64("tolerance", 0, "Bisection tolerance override")
	maxIter := flag.Int("max-iter", 0, "Bisection iteration cap override")
	comparables := flag.String("comparables", "", "Saved HTML market table to import")
	commentary := flag.Bool("commentary", false, "Generate AI commentary (needs GEMINI_API_KEY)")
	flag.Parse()

	godotenv.Load()

	// 1. Inputs: scenario file or the default dataset
	in := params.DefaultInputs()
	if *scenarioPath != "" {
		loaded, err := scenario.Load(*scenarioPath)
		if err != nil {
			fmt.Printf("Error loading scenario: %v\n", err)
			os.Exit(1)
		}
		in = loaded
		fmt.Printf("Loaded scenario: %s\n", *scenarioPath)
	}

	if err := params.Validate(in); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// 2. Optimize
	opts := optimizer.Options{Tolerance: *tolerance, MaxIterations: *maxIter}
	opt := optimizer.NewOptimizer()
	costs := opt.Costs(in)
	res := opt.FindOptimalRent(in, opts)

	report.WriteConsole(os.Stdout, costs, res)

	// 3. Optional JSON export
	if *exportPath != "" {
		doc := report.NewExport(in, costs, res)
		if err := doc.WriteJSON(*exportPath); err != nil {
			fmt.Printf("Error writing export: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\n✅ Results exported to %s\n", *exportPath)
	}

	// 4. Optional rendered report
	if *reportPath != "" {
		if err := writeReport(*reportPath, *format, in, costs, res); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Report written to %s\n", *reportPath)
	}

	// 5. Optional sensitivity sweep
	if *param != "" {
		if err := runSweep(in, *param, *values, *workers, opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	// 6. Optional comparable-lease import
	if *comparables != "" {
		if err := importComparables(*comparables, in.Property); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	// 7. Optional AI commentary
	if *commentary {
		if err := generateCommentary(in, costs, res); err != nil {
			fmt.Printf("Error generating commentary: %v\n", err)
			os.Exit(1)
		}
	}
}

func writeReport(path, format string, in params.Inputs, costs costing.Breakdown, res optimizer.Result) error {
	var content string
	switch strings.ToLower(format) {
	case "markdown":
		content = report.Markdown(in, costs, res)
	case "html":
		html, err := report.HTML(in, costs, res)
		if err != nil {
			return err
		}
		content = html
	default:
		return fmt.Errorf("unknown report format: %s", format)
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func runSweep(base params.Inputs, name, valuesCSV string, workers int, opts optimizer.Options) error {
	if valuesCSV == "" {
		return fmt.Errorf("-values is required with -param")
	}

	var vals []float64
	for _, s := range strings.Split(valuesCSV, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("bad sensitivity value %q: %v", s, err)
		}
		vals = append(vals, v)
	}

	runner := sensitivity.NewRunnerWithOptions(opts)
	var points []sensitivity.Point
	var err error
	if workers > 1 {
		points, err = runner.RunParallel(base, name, vals, workers)
	} else {
		points, err = runner.Run(base, name, vals)
	}
	if err != nil {
		return err
	}

	fmt.Printf("\n📊 Sensitivity: %s\n", name)
	fmt.Printf("%-15s %18s %15s %10s\n", "value", "optimal rent", "npv", "payback")
	for _, p := range points {
		fmt.Printf("%-15.2f %18.2f %15.2f %10.2f\n",
			p.Value, p.Result.OptimalAnnualRent, p.Result.NPV, p.Result.PaybackPeriod)
	}
	return nil
}

func importComparables(path string, prop params.Property) error {
	comps, err := marketdata.ImportFile(path)
	if err != nil {
		return err
	}

	s := marketdata.Summarize(comps)
	fmt.Printf("\n🏢 Comparables: %d leases\n", s.Count)
	if s.Count > 0 {
		fmt.Printf("   Rent/sqm: min %.2f, median %.2f, avg %.2f, max %.2f\n",
			s.MinRentPerSqm, s.MedianRentPerSqm, s.AvgRentPerSqm, s.MaxRentPerSqm)
		fmt.Printf("   Suggested search ceiling: %.0f\n",
			marketdata.SuggestedRentCeiling(comps, prop))
	}
	return nil
}

func generateCommentary(in params.Inputs, costs costing.Breakdown, res optimizer.Result) error {
	ctx := context.Background()
	analyst, err := advisor.NewAnalyst(ctx)
	if err != nil {
		return err
	}
	defer analyst.Close()

	fmt.Println("\n🤖 Generating commentary...")
	c, err := analyst.Review(ctx, in, costs, res)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n", c.Text)
	return nil
}
