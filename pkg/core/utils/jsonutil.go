package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON mistakes in hand-edited files:
// single quotes, unquoted keys, trailing commas, stray comments,
// unclosed brackets. Uses github.com/RealAlexandreAI/json-repair.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %v", err)
	}
	return repaired, nil
}

// ParseHJSON parses Human JSON (comments, unquoted keys, optional
// commas, multiline strings) and returns canonical JSON.
func ParseHJSON(src string) (string, error) {
	var value interface{}
	if err := hjson.Unmarshal([]byte(src), &value); err != nil {
		return "", fmt.Errorf("hjson parse error: %v", err)
	}

	out, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("json marshal error: %v", err)
	}
	return string(out), nil
}

// SmartParse tries multiple strategies to read a document into out:
//  1. Standard JSON
//  2. JSON repair
//  3. Hjson (most lenient)
//
// Returns the canonical JSON that finally unmarshalled, for logging.
func SmartParse(input string, out interface{}) (string, error) {
	// Try 1: Standard JSON
	if err := json.Unmarshal([]byte(input), out); err == nil {
		return input, nil
	}

	// Try 2: JSON repair
	if repaired, err := RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), out); err == nil {
			return repaired, nil
		}
	}

	// Try 3: Hjson
	if converted, err := ParseHJSON(input); err == nil {
		if err := json.Unmarshal([]byte(converted), out); err == nil {
			return converted, nil
		}
	}

	return "", fmt.Errorf("smart parse failed: input is not JSON, repairable JSON or Hjson")
}
