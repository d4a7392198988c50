// Package report renders optimization results for people and files:
// JSON export, console summary and Markdown/HTML documents. Pure
// serialization; the numbers are taken as computed.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/cashflow"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costing"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
)

// Summary is the scalar result block of an export.
type Summary struct {
	OptimalAnnualRent    float64 `json:"optimal_annual_rent"`
	NPV                  float64 `json:"npv"`
	PaybackPeriod        float64 `json:"payback_period"`
	IRR                  float64 `json:"irr"`
	TotalReturns         float64 `json:"total_returns"`
	AverageAnnualReturn  float64 `json:"average_annual_return"`
	TotalDevelopmentCost float64 `json:"total_development_cost"`
	Iterations           int     `json:"iterations"`
}

// Export is the full serialized form of one optimization run.
type Export struct {
	Timestamp       string            `json:"timestamp"`
	Inputs          params.Inputs     `json:"inputs"`
	CalculatedCosts costing.Breakdown `json:"calculated_costs"`
	Results         Summary           `json:"results"`
	CashFlows       []cashflow.Year   `json:"cash_flows"`
}

// NewExport assembles an export document from one run.
func NewExport(in params.Inputs, costs costing.Breakdown, res optimizer.Result) Export {
	return Export{
		Timestamp:       time.Now().Format(time.RFC3339),
		Inputs:          in,
		CalculatedCosts: costs,
		Results: Summary{
			OptimalAnnualRent:    res.OptimalAnnualRent,
			NPV:                  res.NPV,
			PaybackPeriod:        res.PaybackPeriod,
			IRR:                  res.IRR,
			TotalReturns:         res.TotalReturns,
			AverageAnnualReturn:  res.AverageAnnualReturn,
			TotalDevelopmentCost: res.TotalDevelopmentCost,
			Iterations:           res.Iterations,
		},
		CashFlows: res.CashFlows,
	}
}

// JSON serializes the export with indentation.
func (e Export) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// WriteJSON writes the export document to a file.
func (e Export) WriteJSON(path string) error {
	data, err := e.JSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
