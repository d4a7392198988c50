package advisor

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/costing"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/optimizer"
	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
)

// fakeProvider records the prompts it receives and returns a canned reply.
type fakeProvider struct {
	lastPrompt string
	lastSystem string
	reply      string
	err        error
}

func (f *fakeProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	f.lastPrompt = prompt
	f.lastSystem = systemPrompt
	return f.reply, f.err
}

func (f *fakeProvider) AdaptInstructions(raw string) string {
	return raw
}

func testRun(t *testing.T) (params.Inputs, optimizer.Result) {
	t.Helper()
	in := params.DefaultInputs()
	return in, optimizer.NewOptimizer().FindOptimalRent(in, optimizer.Options{})
}

func TestCommentaryUsesConfiguredProvider(t *testing.T) {
	in, res := testRun(t)
	costs := costing.Compute(in.Property, in.CostRatios)

	fake := &fakeProvider{reply: "```markdown\n## Verdict\nViable.\n```"}
	adv := NewAdvisor(Config{ActiveProvider: "fake"})
	adv.RegisterProvider("fake", fake)

	c, err := adv.Commentary(context.Background(), in, costs, res)
	if err != nil {
		t.Fatalf("Commentary failed: %v", err)
	}

	if c.Provider != "fake" {
		t.Errorf("Expected provider fake, got %s", c.Provider)
	}
	if strings.Contains(c.Text, "```") {
		t.Errorf("Code fences should be stripped, got: %q", c.Text)
	}
	if !strings.Contains(c.Text, "## Verdict") {
		t.Errorf("Narrative body lost: %q", c.Text)
	}
	if c.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("Commentary ID not assigned")
	}
	if c.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
	if fake.lastSystem == "" {
		t.Error("System prompt not passed to provider")
	}
}

func TestCommentaryPropagatesProviderError(t *testing.T) {
	in, res := testRun(t)

	fake := &fakeProvider{err: fmt.Errorf("DEEPSEEK_API_ERROR: status=500")}
	adv := NewAdvisor(Config{ActiveProvider: "fake"})
	adv.RegisterProvider("fake", fake)

	if _, err := adv.Commentary(context.Background(), in, costing.Compute(in.Property, in.CostRatios), res); err == nil {
		t.Error("Expected provider error to propagate, got nil")
	}
}

func TestBuildPromptCarriesRunNumbers(t *testing.T) {
	in, res := testRun(t)
	prompt := BuildPrompt(in, costing.Compute(in.Property, in.CostRatios), res)

	// Default 20y/2y-grace run: total cost 93,480,000 and the bisected rent.
	for _, want := range []string{
		"Duration: 20 years (grace period 2 years)",
		"93480000",
		fmt.Sprintf("%.0f", res.OptimalAnnualRent),
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestUnknownProviderFallsBackToGemini(t *testing.T) {
	adv := NewAdvisor(Config{ActiveProvider: "no-such-model"})
	if got := adv.ActiveProvider(); got != "gemini" {
		t.Errorf("Expected gemini fallback, got %s", got)
	}
}

func TestSetProviderRejectsUnknown(t *testing.T) {
	adv := NewAdvisor(Config{ActiveProvider: "gemini"})
	if err := adv.SetProvider("claude"); err == nil {
		t.Error("Expected error for unregistered provider")
	}
	if err := adv.SetProvider("deepseek"); err != nil {
		t.Errorf("SetProvider(deepseek) failed: %v", err)
	}
	if adv.ActiveProvider() != "deepseek" {
		t.Errorf("Active provider not switched, got %s", adv.ActiveProvider())
	}
}
