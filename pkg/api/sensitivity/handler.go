package sensitivity

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/sensitivity"
)

var runner *sensitivity.Runner

func InitHandler(opts optimizer.Options) {
	runner = sensitivity.NewRunnerWithOptions(opts)
}

type SweepRequest struct {
	Parameter  string             `json:"parameter"`
	Values     []float64          `json:"values"`
	Workers    int                `json:"workers"` // 0 or 1 = sequential
	Contract   *params.Contract   `json:"contract"`
	Property   *params.Property   `json:"property"`
	CostRatios *params.CostRatios `json:"cost_ratios"`
}

type SweepResponse struct {
	Parameter string              `json:"parameter"`
	Points    []sensitivity.Point `json:"points"`
}

// HandleSweep re-runs the optimization across the requested values and
// returns the tagged results in request order.
func HandleSweep(w http.ResponseWriter, r *http.Request) {
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

	var req SweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if req.Parameter == "" {
		http.Error(w, "Parameter is required", http.StatusBadRequest)
		return
	}
	if len(req.Values) == 0 {
		http.Error(w, "Values are required", http.StatusBadRequest)
		return
	}

	base := params.DefaultInputs()
	if req.Contract != nil {
		base.Contract = *req.Contract
	}
	if req.Property != nil {
		base.Property = *req.Property
	}
	if req.CostRatios != nil {
		base.CostRatios = *req.CostRatios
	}

	if problems := params.Check(base); len(problems) > 0 {
		http.Error(w, "Invalid parameters: "+strings.Join(problems, "; "), http.StatusBadRequest)
		return
	}

	fmt.Printf("[SENSITIVITY] parameter=%s values=%d workers=%d\n",
		req.Parameter, len(req.Values), req.Workers)

	var points []sensitivity.Point
	var err error
	if req.Workers > 1 {
		points, err = runner.RunParallel(base, req.Parameter, req.Values, req.Workers)
	} else {
		points, err = runner.Run(base, req.Parameter, req.Values)
	}
	if err != nil {
		// Unknown parameter names are a caller mistake, not a server fault.
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SweepResponse{Parameter: req.Parameter, Points: points})
}

// HandleParameters lists the sweepable parameter names.
func HandleParameters(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"parameters": params.Names()})
}
