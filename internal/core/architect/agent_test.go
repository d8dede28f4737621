package architect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivagad/SDLC-Automation/internal/config"
	"github.com/Shivagad/SDLC-Automation/internal/core/model"
	"github.com/Shivagad/SDLC-Automation/internal/store"
)

var testPrompts = config.ArchitectPrompts{
	Design: "design:\n%s",
	UML:    "uml:\n%s",
	Verify: "verify:\n%s\narch:\n%s",
}

const architectureJSON = `{
	"architecture_type": "microservices",
	"components": [
		{"name": "API Gateway", "responsibility": "routing", "technology": "Go", "interfaces": ["REST"]}
	],
	"communication_patterns": ["REST API"],
	"data_storage": {"databases": ["PostgreSQL"], "rationale": "relational data"},
	"technology_stack": {"backend": ["Go"], "frontend": ["React"], "infrastructure": ["Kubernetes"]},
	"design_patterns": ["Factory"],
	"scalability_strategy": "horizontal",
	"performance_considerations": ["caching"]
}`

func storeWithRequirements() *store.Store {
	s := store.New()
	s.AddRequirement("REQ-001", model.RequirementSet{
		FunctionalRequirements: []model.FunctionalRequirement{
			{ID: "FR-001", Description: "Browse books", Priority: "High"},
		},
	})
	return s
}

func TestGenerateArchitectureDesign(t *testing.T) {
	mockLLM := &MockChatClient{Response: architectureJSON}
	ctxStore := storeWithRequirements()
	agent := NewAgent(mockLLM, ctxStore, testPrompts)

	architecture, fail := agent.GenerateArchitectureDesign(context.Background(), nil)

	require.Nil(t, fail)
	assert.Equal(t, "microservices", architecture.ArchitectureType)

	artifacts := ctxStore.DesignArtifacts(store.KindArchitecture)
	require.Len(t, artifacts, 1)
	assert.Equal(t, *architecture, artifacts[0].(model.Architecture))

	// Latest stored requirements rode along in the prompt.
	require.Len(t, mockLLM.Prompts, 1)
	assert.Contains(t, mockLLM.Prompts[0], "FR-001")
}

func TestGenerateArchitectureDesignNoRequirements(t *testing.T) {
	mockLLM := &MockChatClient{}
	agent := NewAgent(mockLLM, store.New(), testPrompts)

	architecture, fail := agent.GenerateArchitectureDesign(context.Background(), nil)

	assert.Nil(t, architecture)
	require.NotNil(t, fail)
	assert.Equal(t, model.FailurePrecondition, fail.Kind)
	assert.Empty(t, mockLLM.Prompts)
}

func TestGenerateUMLClassDiagram(t *testing.T) {
	umlJSON := `{
		"classes": [
			{
				"name": "Order",
				"attributes": [{"name": "id", "type": "string", "visibility": "private"}],
				"methods": [{"name": "process", "parameters": [], "return_type": "bool", "visibility": "public"}]
			}
		],
		"relationships": [
			{"from": "Order", "to": "Entity", "type": "inheritance", "cardinality": "1..1"}
		]
	}`

	mockLLM := &MockChatClient{ResponseQueue: []string{architectureJSON, umlJSON}}
	ctxStore := storeWithRequirements()
	agent := NewAgent(mockLLM, ctxStore, testPrompts)

	_, fail := agent.GenerateArchitectureDesign(context.Background(), nil)
	require.Nil(t, fail)

	uml, fail := agent.GenerateUMLClassDiagram(context.Background(), nil)

	require.Nil(t, fail)
	require.Len(t, uml.Classes, 1)
	assert.Equal(t, "Order", uml.Classes[0].Name)
	assert.Len(t, ctxStore.DesignArtifacts(store.KindUMLClassDiagram), 1)

	// Second call on the same agent saw the first exchange as context.
	assert.Equal(t, []int{0, 2}, mockLLM.HistoryLens)
}

func TestGenerateUMLClassDiagramNoArchitecture(t *testing.T) {
	mockLLM := &MockChatClient{}
	agent := NewAgent(mockLLM, storeWithRequirements(), testPrompts)

	uml, fail := agent.GenerateUMLClassDiagram(context.Background(), nil)

	assert.Nil(t, uml)
	require.NotNil(t, fail)
	assert.Equal(t, model.FailurePrecondition, fail.Kind)
}

func TestVerifyDesign(t *testing.T) {
	verificationJSON := `{
		"requirement_coverage": {"covered": ["FR-001"], "missing": [], "coverage_percentage": 100},
		"nfr_satisfaction": {"satisfied": [], "not_satisfied": []},
		"consistency_check": {"is_consistent": true, "issues": []},
		"risks": ["vendor lock-in"],
		"recommendations": ["add caching layer"]
	}`

	mockLLM := &MockChatClient{ResponseQueue: []string{architectureJSON, verificationJSON}}
	ctxStore := storeWithRequirements()
	agent := NewAgent(mockLLM, ctxStore, testPrompts)

	_, fail := agent.GenerateArchitectureDesign(context.Background(), nil)
	require.Nil(t, fail)

	report, fail := agent.VerifyDesign(context.Background(), nil)

	require.Nil(t, fail)
	assert.Equal(t, []string{"FR-001"}, report.RequirementCoverage.Covered)
	assert.True(t, report.ConsistencyCheck.IsConsistent)

	// The report is returned only, never persisted.
	assert.Equal(t, []string{store.KindArchitecture}, ctxStore.ArtifactKinds())
	assert.Len(t, ctxStore.DesignArtifacts(store.KindArchitecture), 1)
}

func TestVerifyDesignRequiresArchitecture(t *testing.T) {
	mockLLM := &MockChatClient{}
	agent := NewAgent(mockLLM, storeWithRequirements(), testPrompts)

	report, fail := agent.VerifyDesign(context.Background(), nil)

	assert.Nil(t, report)
	require.NotNil(t, fail)
	assert.Equal(t, model.FailurePrecondition, fail.Kind)
	assert.Empty(t, mockLLM.Prompts)
}

func TestVerifyDesignParseFailureCarriesRawReply(t *testing.T) {
	mockLLM := &MockChatClient{ResponseQueue: []string{architectureJSON, "```json\nnot quite json\n```"}}
	ctxStore := storeWithRequirements()
	agent := NewAgent(mockLLM, ctxStore, testPrompts)

	_, fail := agent.GenerateArchitectureDesign(context.Background(), nil)
	require.Nil(t, fail)

	report, fail := agent.VerifyDesign(context.Background(), nil)

	assert.Nil(t, report)
	require.NotNil(t, fail)
	assert.Equal(t, model.FailureParse, fail.Kind)
	assert.Contains(t, fail.RawResponse, "not quite json")
}
