package optimize

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/report"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/store"
)

var (
	opt           *optimizer.Optimizer
	searchOptions optimizer.Options
	runStore      *store.RunStore
)

// InitHandler wires the shared optimizer and the run store. The
// optimizer is shared across requests so its costing cache carries over.
func InitHandler(opts optimizer.Options, runs *store.RunStore) {
	opt = optimizer.NewOptimizer()
	searchOptions = opts
	runStore = runs
}

// OptimizeRequest carries the three parameter groups. Omitted groups
// fall back to the default dataset, matching scenario-file semantics.
type OptimizeRequest struct {
	Contract   *params.Contract   `json:"contract"`
	Property   *params.Property   `json:"property"`
	CostRatios *params.CostRatios `json:"cost_ratios"`
	Label      string             `json:"label"`
	Save       bool               `json:"save"`
}

func (req OptimizeRequest) inputs() params.Inputs {
	in := params.DefaultInputs()
	if req.Contract != nil {
		in.Contract = *req.Contract
	}
	if req.Property != nil {
		in.Property = *req.Property
	}
	if req.CostRatios != nil {
		in.CostRatios = *req.CostRatios
	}
	return in
}

type OptimizeResponse struct {
	report.Export
	RunID string `json:"run_id,omitempty"`
}

// HandleOptimize runs the full search and returns the export document.
func HandleOptimize(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	in := req.inputs()
	if problems := params.Check(in); len(problems) > 0 {
		http.Error(w, "Invalid parameters: "+strings.Join(problems, "; "), http.StatusBadRequest)
		return
	}

	costs := opt.Costs(in)
	res := opt.FindOptimalRent(in, searchOptions)
	fmt.Printf("[OPTIMIZE] rent=%.2f npv=%.2f iterations=%d\n",
		res.OptimalAnnualRent, res.NPV, res.Iterations)

	resp := OptimizeResponse{Export: report.NewExport(in, costs, res)}

	if req.Save && runStore != nil {
		run := store.NewRun(req.Label, in, costs, res)
		if err := runStore.Save(context.Background(), run); err != nil {
			// Persistence is best effort; the computation already succeeded.
			fmt.Printf("[WARNING] Failed to save run: %v\n", err)
		} else {
			resp.RunID = run.ID.String()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleCosts returns the development cost breakdown without running
// the rent search.
func HandleCosts(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	in := req.inputs()
	if problems := params.Check(in); len(problems) > 0 {
		http.Error(w, "Invalid parameters: "+strings.Join(problems, "; "), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(opt.Costs(in))
}
