package utils

import (
	"strings"
	"testing"
)

type scenarioDoc struct {
	Name  string  `json:"name"`
	Area  float64 `json:"area"`
	Years int     `json:"years"`
}

func TestSmartParseStrictJSON(t *testing.T) {
	var doc scenarioDoc
	input := `{"name": "tower", "area": 1200.5, "years": 20}`

	if _, err := SmartParse(input, &doc); err != nil {
		t.Fatalf("SmartParse failed on valid JSON: %v", err)
	}
	if doc.Name != "tower" || doc.Area != 1200.5 || doc.Years != 20 {
		t.Errorf("Unexpected parse result: %+v", doc)
	}
}

func TestSmartParseRepairsSloppyJSON(t *testing.T) {
	// Single quotes and a trailing comma, the usual hand-edit damage.
	var doc scenarioDoc
	input := `{'name': 'tower', 'area': 1200.5, 'years': 20,}`

	if _, err := SmartParse(input, &doc); err != nil {
		t.Fatalf("SmartParse failed on repairable JSON: %v", err)
	}
	if doc.Name != "tower" || doc.Years != 20 {
		t.Errorf("Unexpected repair result: %+v", doc)
	}
}

func TestSmartParseHandlesHjson(t *testing.T) {
	var doc scenarioDoc
	input := `{
  # human-written scenario
  name: tower
  area: 1200.5
  years: 20
}`

	if _, err := SmartParse(input, &doc); err != nil {
		t.Fatalf("SmartParse failed on Hjson: %v", err)
	}
	if doc.Name != "tower" || doc.Area != 1200.5 {
		t.Errorf("Unexpected Hjson result: %+v", doc)
	}
}

func TestSmartParseRejectsGarbage(t *testing.T) {
	var doc scenarioDoc
	if _, err := SmartParse("[[[", &doc); err == nil {
		t.Error("Expected error for unparseable input, got nil")
	}
}

func TestParseHJSONProducesCanonicalJSON(t *testing.T) {
	out, err := ParseHJSON("{a: 1, b: hello}")
	if err != nil {
		t.Fatalf("ParseHJSON failed: %v", err)
	}
	if !strings.Contains(out, `"a":1`) {
		t.Errorf("Expected canonical JSON, got %s", out)
	}
}
