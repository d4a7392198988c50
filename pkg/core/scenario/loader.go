// Package scenario loads calculation inputs from human-edited files.
// Files may be strict JSON, sloppy JSON (repaired automatically) or
// Hjson with comments; they overlay the default dataset, so a scenario
// only needs to state the fields it changes.
package scenario

import (
	"fmt"
	"os"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/utils"
)

// Load reads and validates a scenario file from disk.
func Load(path string) (params.Inputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return params.Inputs{}, fmt.Errorf("read scenario: %w", err)
	}

	in, err := Parse(string(data))
	if err != nil {
		return params.Inputs{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return in, nil
}

// Parse reads a scenario document from memory. Absent fields keep their
// default values; out-of-range values are rejected.
func Parse(src string) (params.Inputs, error) {
	in := params.DefaultInputs()
	if _, err := utils.SmartParse(src, &in); err != nil {
		return params.Inputs{}, fmt.Errorf("parse scenario: %w", err)
	}

	if err := params.Validate(in); err != nil {
		return params.Inputs{}, err
	}
	return in, nil
}
