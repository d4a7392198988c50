package report

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/report"
)

var (
	opt           *optimizer.Optimizer
	searchOptions optimizer.Options
)

func InitHandler(opts optimizer.Options) {
	opt = optimizer.NewOptimizer()
	searchOptions = opts
}

type ReportRequest struct {
	Format     string             `json:"format"` // "markdown" (default) or "html"
	Contract   *params.Contract   `json:"contract"`
	Property   *params.Property   `json:"property"`
	CostRatios *params.CostRatios `json:"cost_ratios"`
}

type ReportResponse struct {
	Format  string `json:"format"`
	Content string `json:"content"`
}

// HandleReport runs the optimization and renders the result document.
func HandleReport(w http.ResponseWriter, r *http.Request) {
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

	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	format := strings.ToLower(req.Format)
	if format == "" {
		format = "markdown"
	}
	if format != "markdown" && format != "html" {
		http.Error(w, "Format must be markdown or html", http.StatusBadRequest)
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

	var content string
	if format == "html" {
		html, err := report.HTML(in, costs, res)
		if err != nil {
			http.Error(w, "Report rendering failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		content = html
	} else {
		content = report.Markdown(in, costs, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ReportResponse{Format: format, Content: content})
}
