package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/advisor"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
)

var (
	adv           *advisor.Advisor
	opt           *optimizer.Optimizer
	searchOptions optimizer.Options
)

func InitHandler(a *advisor.Advisor, opts optimizer.Options) {
	adv = a
	opt = optimizer.NewOptimizer()
	searchOptions = opts
}

type CommentaryRequest struct {
	Contract   *params.Contract   `json:"contract"`
	Property   *params.Property   `json:"property"`
	CostRatios *params.CostRatios `json:"cost_ratios"`
}

// HandleCommentary reruns the optimization for the given inputs and asks
// the configured model to write its assessment.
func HandleCommentary(w http.ResponseWriter, r *http.Request) {
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

	if adv == nil || !adv.Available() {
		http.Error(w, "Commentary is not configured: set GEMINI_API_KEY or DEEPSEEK_API_KEY",
			http.StatusServiceUnavailable)
		return
	}

	var req CommentaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

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

	if problems := params.Check(in); len(problems) > 0 {
		http.Error(w, "Invalid parameters: "+strings.Join(problems, "; "), http.StatusBadRequest)
		return
	}

	costs := opt.Costs(in)
	res := opt.FindOptimalRent(in, searchOptions)

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	fmt.Printf("[ADVISOR] Generating commentary via %s...\n", adv.ActiveProvider())
	commentary, err := adv.Commentary(ctx, in, costs, res)
	if err != nil {
		http.Error(w, fmt.Sprintf("Commentary failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(commentary)
}
