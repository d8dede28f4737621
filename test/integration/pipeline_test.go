//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivagad/SDLC-Automation/internal/config"
	"github.com/Shivagad/SDLC-Automation/internal/core"
	"github.com/Shivagad/SDLC-Automation/internal/llm"
)

// Runs the full pipeline against a live model. Requires LLM_API_KEY
// (or a local Ollama via LLM_PROVIDER=ollama).
func TestPipelineLive(t *testing.T) {
	_ = godotenv.Load("../../.env")

	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" && provider != "ollama" {
		t.Skip("Skipping integration test: LLM_API_KEY not set")
	}

	cfg, err := config.Load("../../config/config.toml")
	require.NoError(t, err)
	cfg.ApplyEnv()

	ctx := context.Background()
	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	require.NoError(t, err)

	w := core.NewWorkflow(llmClient, cfg)

	rawInput := `We need to build an e-commerce platform for selling books online.
Users should be able to browse books by category, search for specific titles,
add books to cart, and checkout securely. The system should handle 10000 concurrent users.
Payment processing must be secure and support multiple payment methods.
The platform should be responsive and work on mobile devices.`

	requirements, fail := w.AnalyzeRequirements(ctx, rawInput)
	require.Nil(t, fail)
	assert.NotEmpty(t, requirements.FunctionalRequirements)

	stories, fail := w.GenerateUserStories(ctx, nil)
	require.Nil(t, fail)
	assert.NotEmpty(t, stories.UserStories)

	architecture, fail := w.GenerateArchitectureDesign(ctx, nil)
	require.Nil(t, fail)
	assert.NotEmpty(t, architecture.Components)

	uml, fail := w.GenerateUMLClassDiagram(ctx, nil)
	require.Nil(t, fail)
	assert.NotEmpty(t, uml.Classes)

	report, fail := w.VerifyDesign(ctx, nil)
	require.Nil(t, fail)
	assert.GreaterOrEqual(t, report.RequirementCoverage.CoveragePercentage, float64(0))

	text, fail := w.ArchitectureDiagram()
	require.Nil(t, fail)
	assert.Contains(t, text, "graph TD")
}
