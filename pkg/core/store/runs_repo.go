package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costing"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Run is one persisted optimization: the inputs that went in, the cost
// breakdown, and the result that came out.
type Run struct {
	ID        uuid.UUID         `json:"id"`
	Label     string            `json:"label"`
	Inputs    params.Inputs     `json:"inputs"`
	Costs     costing.Breakdown `json:"calculated_costs"`
	Result    optimizer.Result  `json:"results"`
	CreatedAt time.Time         `json:"created_at"`
}

// RunSummary is the listing view of a run.
type RunSummary struct {
	ID                uuid.UUID `json:"id"`
	Label             string    `json:"label"`
	OptimalAnnualRent float64   `json:"optimal_annual_rent"`
	NPV               float64   `json:"npv"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewRun stamps a run with its identity and creation time.
func NewRun(label string, in params.Inputs, costs costing.Breakdown, res optimizer.Result) Run {
	return Run{
		ID:        uuid.New(),
		Label:     label,
		Inputs:    in,
		Costs:     costs,
		Result:    res,
		CreatedAt: time.Now(),
	}
}

func (r Run) Summary() RunSummary {
	return RunSummary{
		ID:                r.ID,
		Label:             r.Label,
		OptimalAnnualRent: r.Result.OptimalAnnualRent,
		NPV:               r.Result.NPV,
		CreatedAt:         r.CreatedAt,
	}
}

// RunStore is a hybrid vault: DB (primary) + file system (fallback/local).
type RunStore struct {
	pool    *pgxpool.Pool
	fileDir string
}

// NewRunStore creates a run store.
// If pool is nil, it falls back to a file-based store in the specified directory.
// If dir is empty too, it defaults to .cache/runs.
func NewRunStore(pool *pgxpool.Pool, dir string) *RunStore {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "runs")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check RunStore dir: %v\n", err)
		}
	}
	return &RunStore{pool: pool, fileDir: dir}
}

// Save upserts a run, keyed by its UUID. With both backends configured
// the file copy is written as well, so local inspection keeps working.
func (s *RunStore) Save(ctx context.Context, run Run) error {
	runJSON, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	// 1. Save to DB
	if s.pool != nil {
		query := `
			INSERT INTO lease_runs (id, label, run_json, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW())
			ON CONFLICT (id)
			DO UPDATE SET
				label = EXCLUDED.label,
				run_json = EXCLUDED.run_json,
				updated_at = NOW();
		`
		if _, err := s.pool.Exec(ctx, query, run.ID, run.Label, runJSON, run.CreatedAt); err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
	}

	// 2. Save to file (always if configured, or if pool is nil)
	if s.fileDir != "" {
		fileBytes, _ := json.MarshalIndent(run, "", "  ")
		if err := os.WriteFile(s.runPath(run.ID), fileBytes, 0644); err != nil {
			return fmt.Errorf("failed to save run file: %w", err)
		}
	}

	return nil
}

// Get fetches one run by ID. A miss returns (nil, nil).
func (s *RunStore) Get(ctx context.Context, id uuid.UUID) (*Run, error) {
	// 1. Try DB
	if s.pool != nil {
		query := `SELECT run_json FROM lease_runs WHERE id = $1`

		var runJSON []byte
		err := s.pool.QueryRow(ctx, query, id).Scan(&runJSON)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to load run: %w", err)
		}

		var run Run
		if err := json.Unmarshal(runJSON, &run); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run: %w", err)
		}
		return &run, nil
	}

	// 2. Try file system
	if s.fileDir != "" {
		return s.loadRun(s.runPath(id))
	}

	return nil, nil
}

// List returns run summaries, newest first.
func (s *RunStore) List(ctx context.Context) ([]RunSummary, error) {
	if s.pool != nil {
		query := `SELECT run_json FROM lease_runs ORDER BY created_at DESC`

		rows, err := s.pool.Query(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to list runs: %w", err)
		}
		defer rows.Close()

		var summaries []RunSummary
		for rows.Next() {
			var runJSON []byte
			if err := rows.Scan(&runJSON); err != nil {
				return nil, fmt.Errorf("failed to scan run row: %w", err)
			}
			var run Run
			if err := json.Unmarshal(runJSON, &run); err != nil {
				continue // Skip unreadable rows rather than failing the listing
			}
			summaries = append(summaries, run.Summary())
		}
		return summaries, rows.Err()
	}

	// File fallback: scan the directory
	if s.fileDir != "" {
		entries, err := os.ReadDir(s.fileDir)
		if err != nil {
			return nil, nil
		}

		var summaries []RunSummary
		for _, e := range entries {
			if filepath.Ext(e.Name()) != ".json" {
				continue
			}
			run, err := s.loadRun(filepath.Join(s.fileDir, e.Name()))
			if err != nil || run == nil {
				continue
			}
			summaries = append(summaries, run.Summary())
		}

		sort.Slice(summaries, func(i, j int) bool {
			return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
		})
		return summaries, nil
	}

	return nil, nil
}

// Exists checks whether a run is already stored.
func (s *RunStore) Exists(ctx context.Context, id uuid.UUID) bool {
	if s.pool != nil {
		query := `SELECT 1 FROM lease_runs WHERE id = $1 LIMIT 1`
		var exists int
		if err := s.pool.QueryRow(ctx, query, id).Scan(&exists); err == nil {
			return true
		}
	}

	if s.fileDir != "" {
		if _, err := os.Stat(s.runPath(id)); err == nil {
			return true
		}
	}

	return false
}

// Internal file helpers

func (s *RunStore) runPath(id uuid.UUID) string {
	return filepath.Join(s.fileDir, id.String()+".json")
}

func (s *RunStore) loadRun(path string) (*Run, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, nil // Not found
	}

	var run Run
	if err := json.Unmarshal(bytes, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run file: %w", err)
	}
	return &run, nil
}
