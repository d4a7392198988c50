package comparables

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/marketdata"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
)

type ImportRequest struct {
	HTML     string           `json:"html"`
	Property *params.Property `json:"property"` // For the suggested ceiling; defaults apply
}

type ImportResponse struct {
	Comparables          []marketdata.Comparable `json:"comparables"`
	Summary              marketdata.Summary      `json:"summary"`
	SuggestedRentCeiling float64                 `json:"suggested_rent_ceiling"`
}

// HandleImport parses a saved HTML market table into comparables and
// derives the per-sqm market summary.
func HandleImport(w http.ResponseWriter, r *http.Request) {
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

	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if req.HTML == "" {
		http.Error(w, "HTML is required", http.StatusBadRequest)
		return
	}

	comps, err := marketdata.ImportHTML(req.HTML)
	if err != nil {
		http.Error(w, fmt.Sprintf("Import failed: %v", err), http.StatusBadRequest)
		return
	}
	if comps == nil {
		comps = []marketdata.Comparable{}
	}

	prop := params.DefaultInputs().Property
	if req.Property != nil {
		prop = *req.Property
	}

	resp := ImportResponse{
		Comparables:          comps,
		Summary:              marketdata.Summarize(comps),
		SuggestedRentCeiling: marketdata.SuggestedRentCeiling(comps, prop),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
