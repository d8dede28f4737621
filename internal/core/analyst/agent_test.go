package analyst

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivagad/SDLC-Automation/internal/config"
	"github.com/Shivagad/SDLC-Automation/internal/core/model"
	"github.com/Shivagad/SDLC-Automation/internal/store"
)

var testPrompts = config.AnalystPrompts{
	Analyze: "analyze:\n%s",
	Stories: "stories:\n%s",
}

func TestAnalyzeRequirements(t *testing.T) {
	mockJSON := "```json\n" + `{
		"functional_requirements": [
			{"id": "FR-001", "description": "Browse books", "priority": "High"}
		],
		"non_functional_requirements": [
			{"id": "NFR-001", "type": "performance", "description": "10k users", "metric": "concurrent users"}
		],
		"constraints": ["budget"],
		"dependencies": [],
		"stakeholder_concerns": ["security"]
	}` + "\n```"

	mockLLM := &MockChatClient{Response: mockJSON}
	ctxStore := store.New()
	agent := NewAgent(mockLLM, ctxStore, testPrompts)

	requirements, fail := agent.AnalyzeRequirements(context.Background(), "We need a bookstore.")

	require.Nil(t, fail)
	require.Len(t, requirements.FunctionalRequirements, 1)
	assert.Equal(t, "FR-001", requirements.FunctionalRequirements[0].ID)

	records := ctxStore.Requirements()
	require.Len(t, records, 1)
	assert.Equal(t, "REQ-001", records[0].ID)
	assert.Equal(t, *requirements, records[0].Data)
}

func TestAnalyzeRequirementsParseFailure(t *testing.T) {
	mockLLM := &MockChatClient{Response: "I cannot produce JSON today."}
	ctxStore := store.New()
	agent := NewAgent(mockLLM, ctxStore, testPrompts)

	requirements, fail := agent.AnalyzeRequirements(context.Background(), "raw text")

	assert.Nil(t, requirements)
	require.NotNil(t, fail)
	assert.Equal(t, model.FailureParse, fail.Kind)
	assert.Equal(t, "I cannot produce JSON today.", fail.RawResponse)
	assert.Empty(t, ctxStore.Requirements())
}

func TestAnalyzeRequirementsTransportFailure(t *testing.T) {
	mockLLM := &MockChatClient{Err: errors.New("connection reset")}
	ctxStore := store.New()
	agent := NewAgent(mockLLM, ctxStore, testPrompts)

	_, fail := agent.AnalyzeRequirements(context.Background(), "raw text")

	require.NotNil(t, fail)
	assert.Equal(t, model.FailureTransport, fail.Kind)
	assert.Empty(t, ctxStore.Requirements())
}

func TestGenerateUserStoriesEmptyStore(t *testing.T) {
	mockLLM := &MockChatClient{}
	ctxStore := store.New()
	agent := NewAgent(mockLLM, ctxStore, testPrompts)

	batch, fail := agent.GenerateUserStories(context.Background(), nil)

	assert.Nil(t, batch)
	require.NotNil(t, fail)
	assert.Equal(t, model.FailurePrecondition, fail.Kind)
	// No model call and no store mutation.
	assert.Empty(t, mockLLM.Prompts)
	assert.Empty(t, ctxStore.UserStories())
}

func TestGenerateUserStoriesDefaultsToLatest(t *testing.T) {
	storiesJSON := `{
		"user_stories": [
			{
				"id": "US-001",
				"as_a": "shopper",
				"i_want": "to browse books",
				"so_that": "I can find what to buy",
				"acceptance_criteria": ["catalog loads"],
				"priority": "High",
				"story_points": 3,
				"linked_requirements": ["FR-001"]
			}
		]
	}`

	mockLLM := &MockChatClient{Response: storiesJSON}
	ctxStore := store.New()
	ctxStore.AddRequirement("REQ-001", model.RequirementSet{
		FunctionalRequirements: []model.FunctionalRequirement{
			{ID: "FR-001", Description: "Browse books", Priority: "High"},
		},
	})
	agent := NewAgent(mockLLM, ctxStore, testPrompts)

	batch, fail := agent.GenerateUserStories(context.Background(), nil)

	require.Nil(t, fail)
	require.Len(t, batch.UserStories, 1)
	assert.Equal(t, []string{"FR-001"}, batch.UserStories[0].LinkedRequirements)

	stored := ctxStore.UserStories()
	require.Len(t, stored, 1)
	assert.Equal(t, "US-001", stored[0].ID)

	// The serialized requirement set rode along in the prompt.
	require.Len(t, mockLLM.Prompts, 1)
	assert.Contains(t, mockLLM.Prompts[0], "FR-001")
}

func TestGenerateUserStoriesParseFailureLeavesStoreUntouched(t *testing.T) {
	mockLLM := &MockChatClient{Response: "not json"}
	ctxStore := store.New()
	ctxStore.AddRequirement("REQ-001", model.RequirementSet{})
	agent := NewAgent(mockLLM, ctxStore, testPrompts)

	batch, fail := agent.GenerateUserStories(context.Background(), nil)

	assert.Nil(t, batch)
	require.NotNil(t, fail)
	assert.Equal(t, model.FailureParse, fail.Kind)
	assert.Equal(t, "not json", fail.RawResponse)
	assert.Empty(t, ctxStore.UserStories())
}

func TestTranscriptGrowsAcrossCalls(t *testing.T) {
	reqJSON := `{"functional_requirements": [], "non_functional_requirements": [], "constraints": [], "dependencies": [], "stakeholder_concerns": []}`
	storiesJSON := `{"user_stories": []}`

	mockLLM := &MockChatClient{ResponseQueue: []string{reqJSON, storiesJSON}}
	ctxStore := store.New()
	agent := NewAgent(mockLLM, ctxStore, testPrompts)

	_, fail := agent.AnalyzeRequirements(context.Background(), "raw")
	require.Nil(t, fail)
	_, fail = agent.GenerateUserStories(context.Background(), nil)
	require.Nil(t, fail)

	// First call starts empty; second sees the prior prompt and reply.
	assert.Equal(t, []int{0, 2}, mockLLM.HistoryLens)
}
