// Package llm wraps the model APIs used to generate lease commentary.
// Providers never feed back into the calculation engine; they only turn
// finished optimization results into narrative text.
package llm

import (
	"context"
)

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}
