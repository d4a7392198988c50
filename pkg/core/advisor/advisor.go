// Package advisor generates narrative commentary for a finished
// optimization run. Commentary is advisory output for reports and the
// API; it never feeds back into the numeric engine.
package advisor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costing"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/llm"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/utils"

	"github.com/google/uuid"
)

type Config struct {
	ActiveProvider string `yaml:"active_provider"`
	Model          string `yaml:"model"` // Optional override passed to the provider
}

// Commentary is one generated narrative, tagged with the provider that wrote it.
type Commentary struct {
	ID          uuid.UUID `json:"id"`
	Provider    string    `json:"provider"`
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Advisor routes commentary requests to the configured LLM provider.
type Advisor struct {
	config    Config
	providers map[string]llm.Provider
}

func NewAdvisor(config Config) *Advisor {
	return &Advisor{
		config: config,
		providers: map[string]llm.Provider{
			"gemini":   &llm.GeminiProvider{},
			"deepseek": &llm.DeepSeekProvider{},
		},
	}
}

// GetProvider resolves the active provider. Unknown names fall back to gemini.
func (a *Advisor) GetProvider() (string, llm.Provider) {
	if p, ok := a.providers[a.config.ActiveProvider]; ok {
		return a.config.ActiveProvider, p
	}
	return "gemini", a.providers["gemini"]
}

func (a *Advisor) SetProvider(name string) error {
	if _, ok := a.providers[name]; !ok {
		return fmt.Errorf("provider %s not found", name)
	}
	a.config.ActiveProvider = name
	return nil
}

func (a *Advisor) ActiveProvider() string {
	name, _ := a.GetProvider()
	return name
}

// RegisterProvider swaps in a provider implementation under the given name.
// Tests use this to avoid real API calls.
func (a *Advisor) RegisterProvider(name string, p llm.Provider) {
	a.providers[name] = p
}

// Available reports whether the active provider has its API key set.
// Without a key the service runs fine, just without commentary.
func (a *Advisor) Available() bool {
	switch a.ActiveProvider() {
	case "deepseek":
		return os.Getenv("DEEPSEEK_API_KEY") != ""
	case "gemini":
		return os.Getenv("GEMINI_API_KEY") != ""
	default:
		return true
	}
}

// Commentary runs the active provider over a finished optimization and
// returns the cleaned narrative.
func (a *Advisor) Commentary(ctx context.Context, in params.Inputs, costs costing.Breakdown, res optimizer.Result) (Commentary, error) {
	name, provider := a.GetProvider()

	options := map[string]interface{}{}
	if a.config.Model != "" {
		options["model"] = a.config.Model
	}

	// Adapt instructions based on the model's specialized "teaching" style
	systemPrompt := provider.AdaptInstructions(commentarySystemPrompt)

	text, err := provider.GenerateResponse(ctx, BuildPrompt(in, costs, res), systemPrompt, options)
	if err != nil {
		return Commentary{}, fmt.Errorf("commentary generation failed: %w", err)
	}

	return Commentary{
		ID:          uuid.New(),
		Provider:    name,
		Text:        utils.CleanMarkdown(text),
		GeneratedAt: time.Now(),
	}, nil
}

// BuildPrompt lays out the run's numbers for the model. Money amounts are
// printed whole; rates keep two decimals.
func BuildPrompt(in params.Inputs, costs costing.Breakdown, res optimizer.Result) string {
	var sb strings.Builder

	sb.WriteString("Review the following long-term lease optimization run and write your commentary.\n\n")

	sb.WriteString("## Contract\n")
	sb.WriteString(fmt.Sprintf("- Duration: %d years (grace period %d years)\n", in.Contract.Duration, in.Contract.GracePeriod))
	sb.WriteString(fmt.Sprintf("- Rent increase: %.2f%% every %d years\n", in.Contract.IncreaseRate, in.Contract.IncreaseInterval))
	sb.WriteString(fmt.Sprintf("- Capitalization rate: %.2f%%\n\n", in.Contract.CapitalizationRate))

	sb.WriteString("## Property\n")
	sb.WriteString(fmt.Sprintf("- Land area: %.0f sqm, building factor %.2f, building ratio %.0f%%\n",
		in.Property.LandArea, in.Property.BuildingFactor, in.Property.BuildingRatio))
	sb.WriteString(fmt.Sprintf("- Total development cost: %.0f (basic %.0f + additional %.0f)\n\n",
		costs.TotalDevelopmentCost, costs.BasicCosts, costs.TotalAdditionalCosts))

	sb.WriteString("## Optimization Result\n")
	sb.WriteString(fmt.Sprintf("- Optimal annual rent: %.0f\n", res.OptimalAnnualRent))
	sb.WriteString(fmt.Sprintf("- NPV at optimal rent: %.0f\n", res.NPV))
	sb.WriteString(fmt.Sprintf("- Payback period: %.1f years\n", res.PaybackPeriod))
	sb.WriteString(fmt.Sprintf("- IRR: %.2f%%\n", res.IRR))
	sb.WriteString(fmt.Sprintf("- Total returns: %.0f over %d years\n", res.TotalReturns, in.Contract.Duration))
	sb.WriteString(fmt.Sprintf("- Found in %d bisection iterations\n", res.Iterations))

	return sb.String()
}

var commentarySystemPrompt = `You are a senior real-estate investment advisor reviewing the output of a
long-term lease rent optimization. The engine has already found the maximum
annual rent the tenant can pay while keeping the landlord's net present value
non-negative.

Your job is to interpret the numbers, not recompute them:
- Assess whether the optimal rent and payback period look commercially viable.
- Flag contract terms (grace period, increase schedule, capitalization rate)
  that drive the result.
- Note risks the pure DCF view hides (vacancy, construction overrun, re-letting).

OUTPUT FORMAT:
- Markdown, 3-5 short sections with ## headings.
- Lead with a one-paragraph verdict.
- Never invent numbers that are not in the input.`
