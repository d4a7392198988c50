// Package marketdata imports comparable-lease evidence from saved HTML
// market tables. Everything here is advisory context for a run; the
// optimizer itself always searches its fixed interval.
package marketdata

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"

	"github.com/PuerkitoBio/goquery"
)

// Comparable is one observed lease: a property with its leased area and
// the annual rent it achieves.
type Comparable struct {
	Name       string  `json:"name"`
	Area       float64 `json:"area"`        // m²
	AnnualRent float64 `json:"annual_rent"` // currency/year
	RentPerSqm float64 `json:"rent_per_sqm"`
}

// Summary condenses a comparable set into per-sqm market statistics.
type Summary struct {
	Count            int     `json:"count"`
	MinRentPerSqm    float64 `json:"min_rent_per_sqm"`
	MaxRentPerSqm    float64 `json:"max_rent_per_sqm"`
	AvgRentPerSqm    float64 `json:"avg_rent_per_sqm"`
	MedianRentPerSqm float64 `json:"median_rent_per_sqm"`
}

// =============================================================================
// HTML IMPORT - Extract comparables from saved market report tables
// =============================================================================

// ImportHTML scans every <table> in the document for a header row naming
// an area column and a rent column, then reads the data rows below it.
// Tables without such a header are ignored; malformed rows are skipped.
func ImportHTML(html string) ([]Comparable, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("comparables html parse failed: %w", err)
	}

	var comps []Comparable
	totalTables := 0
	matchedTables := 0

	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		totalTables++

		areaCol, rentCol, dataStart := findColumns(table)
		if areaCol < 0 || rentCol < 0 {
			return
		}
		matchedTables++

		rows := table.Find("tr")
		rows.Slice(dataStart, rows.Length()).Each(func(j int, row *goquery.Selection) {
			cells := row.Find("td, th")
			if cells.Length() <= areaCol || cells.Length() <= rentCol {
				return
			}

			name := strings.TrimSpace(cells.First().Text())
			area, areaOK := parseNumber(cells.Eq(areaCol).Text())
			rent, rentOK := parseNumber(cells.Eq(rentCol).Text())

			if !areaOK || !rentOK || area <= 0 || rent <= 0 {
				return
			}

			comps = append(comps, Comparable{
				Name:       name,
				Area:       area,
				AnnualRent: rent,
				RentPerSqm: rent / area,
			})
		})
	})

	log.Printf("[Comparables] SUMMARY: tables=%d, matched=%d, comparables=%d",
		totalTables, matchedTables, len(comps))

	return comps, nil
}

// ImportFile reads a saved HTML report from disk and imports it.
func ImportFile(path string) ([]Comparable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read comparables file: %w", err)
	}
	return ImportHTML(string(data))
}

// findColumns locates the header row whose cells name an area column and
// a rent column. Returns (-1, -1, 0) when the table has no such header.
func findColumns(table *goquery.Selection) (areaCol, rentCol, dataStart int) {
	areaCol, rentCol = -1, -1

	table.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td, th")
		if cells.Length() == 0 {
			return true // Continue
		}

		a, r := -1, -1
		cells.Each(func(j int, cell *goquery.Selection) {
			header := strings.ToLower(strings.TrimSpace(cell.Text()))
			if a < 0 && strings.Contains(header, "area") {
				a = j
			}
			if r < 0 && strings.Contains(header, "rent") {
				r = j
			}
		})

		if a >= 0 && r >= 0 && a != r {
			areaCol, rentCol = a, r
			dataStart = i + 1
			return false // Break
		}
		return true
	})

	return areaCol, rentCol, dataStart
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// parseNumber reads a numeric table cell.
// Examples:
//
//	"(1,234)" → -1234 (parentheses = negative)
//	"$1,234.56" → 1234.56
//	"—" or "-" → not a number
//	"12,000" → 12000
func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)

	// Check for blank indicators
	if raw == "" || raw == "—" || raw == "-" || raw == "–" || raw == "N/A" {
		return 0, false
	}

	// Check for parentheses (negative)
	isNegative := strings.Contains(raw, "(") && strings.Contains(raw, ")")

	cleaned := nonNumeric.ReplaceAllString(raw, "")
	if cleaned == "" || cleaned == "." || cleaned == "-" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}

	if isNegative && value > 0 {
		value = -value
	}

	return value, true
}

// =============================================================================
// MARKET STATISTICS
// =============================================================================

// Summarize derives the per-sqm statistics of a comparable set. An empty
// set yields a zero Summary.
func Summarize(comps []Comparable) Summary {
	if len(comps) == 0 {
		return Summary{}
	}

	rates := make([]float64, 0, len(comps))
	sum := 0.0
	for _, c := range comps {
		rates = append(rates, c.RentPerSqm)
		sum += c.RentPerSqm
	}
	sort.Float64s(rates)

	n := len(rates)
	median := rates[n/2]
	if n%2 == 0 {
		median = (rates[n/2-1] + rates[n/2]) / 2
	}

	return Summary{
		Count:            n,
		MinRentPerSqm:    rates[0],
		MaxRentPerSqm:    rates[n-1],
		AvgRentPerSqm:    sum / float64(n),
		MedianRentPerSqm: median,
	}
}

// SuggestedRentCeiling proposes a search upper bound from market
// evidence: twice the strongest observed rent per square metre applied
// to the property's buildable area. The suggestion never exceeds the
// optimizer's fixed ceiling, and without comparables it falls back to
// that ceiling. Advisory only; FindOptimalRent keeps its own interval.
func SuggestedRentCeiling(comps []Comparable, prop params.Property) float64 {
	if len(comps) == 0 {
		return optimizer.RentCeiling
	}

	s := Summarize(comps)
	suggested := 2 * s.MaxRentPerSqm * prop.LandArea * prop.BuildingFactor
	if suggested > optimizer.RentCeiling {
		return optimizer.RentCeiling
	}
	return suggested
}
