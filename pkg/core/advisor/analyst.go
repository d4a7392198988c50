package advisor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costing"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/utils"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// Analyst talks to Gemini directly. The CLI uses it so a single
// GEMINI_API_KEY is enough, without any provider configuration.
type Analyst struct {
	modelName    string
	client       *genai.Client
	systemPrompt string
}

func NewAnalyst(ctx context.Context) (*Analyst, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	return &Analyst{
		modelName:    "gemini-2.0-flash",
		client:       client,
		systemPrompt: commentarySystemPrompt,
	}, nil
}

func (a *Analyst) Close() error {
	return a.client.Close()
}

// Review generates commentary for a finished run.
func (a *Analyst) Review(ctx context.Context, in params.Inputs, costs costing.Breakdown, res optimizer.Result) (Commentary, error) {
	model := a.client.GenerativeModel(a.modelName)
	model.SetTemperature(0.4)

	fullPrompt := fmt.Sprintf("%s\n\nTask: %s", a.systemPrompt, BuildPrompt(in, costs, res))

	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return Commentary{}, fmt.Errorf("commentary generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Commentary{}, fmt.Errorf("empty response from %s", a.modelName)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return Commentary{
		ID:          uuid.New(),
		Provider:    "gemini",
		Text:        utils.CleanMarkdown(sb.String()),
		GeneratedAt: time.Now(),
	}, nil
}
