package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	advisorapi "github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/api/advisor"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/api/comparables"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/api/optimize"
	reportapi "github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/api/report"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/api/runs"
	sensitivityapi "github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/api/sensitivity"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/config"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/advisor"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := config.Load(config.DefaultPath)
	opts := optimizer.Options{
		Tolerance:     cfg.Optimizer.Tolerance,
		MaxIterations: cfg.Optimizer.MaxIterations,
	}

	// Persistence: Postgres when DATABASE_URL is set, file store otherwise.
	// A broken database never blocks the calculation endpoints.
	ctx := context.Background()
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			fmt.Printf("[WARNING] Database unavailable, falling back to file store: %v\n", err)
		} else if err := store.EnsureSchema(ctx); err != nil {
			fmt.Printf("[WARNING] Schema check failed: %v\n", err)
		}
	}
	runStore := store.NewRunStore(store.GetPool(), cfg.Store.CacheDir)

	// Commentary provider from config
	adv := advisor.NewAdvisor(advisor.Config{
		ActiveProvider: cfg.Advisor.ActiveProvider,
		Model:          cfg.Advisor.Model,
	})
	if !adv.Available() {
		fmt.Printf("[WARNING] No API key for provider %q; /api/advisor/commentary disabled\n",
			adv.ActiveProvider())
	}

	// Wire handlers
	optimize.InitHandler(opts, runStore)
	sensitivityapi.InitHandler(opts)
	reportapi.InitHandler(opts)
	runs.InitHandler(runStore)
	advisorapi.InitHandler(adv, opts)

	// Optimization endpoints
	http.HandleFunc("/api/optimize", optimize.HandleOptimize)
	http.HandleFunc("/api/costs", optimize.HandleCosts)

	// Sensitivity endpoints
	http.HandleFunc("/api/sensitivity", sensitivityapi.HandleSweep)
	http.HandleFunc("/api/sensitivity/parameters", sensitivityapi.HandleParameters)

	// Persisted run endpoints
	http.HandleFunc("/api/runs", runs.HandleList)
	http.HandleFunc("/api/run", runs.HandleGet)

	// Report + market data endpoints
	http.HandleFunc("/api/report", reportapi.HandleReport)
	http.HandleFunc("/api/comparables/import", comparables.HandleImport)

	// Commentary endpoint
	http.HandleFunc("/api/advisor/commentary", advisorapi.HandleCommentary)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("API server starting on %s...\n", addr)
	fmt.Println("  - POST /api/optimize")
	fmt.Println("  - POST /api/costs")
	fmt.Println("  - POST /api/sensitivity")
	fmt.Println("  - GET  /api/sensitivity/parameters")
	fmt.Println("  - GET  /api/runs")
	fmt.Println("  - GET  /api/run?id=<uuid>")
	fmt.Println("  - POST /api/report")
	fmt.Println("  - POST /api/comparables/import")
	fmt.Println("  - POST /api/advisor/commentary")

	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
