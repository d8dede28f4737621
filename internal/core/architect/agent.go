package architect

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Shivagad/SDLC-Automation/internal/config"
	"github.com/Shivagad/SDLC-Automation/internal/core/common"
	"github.com/Shivagad/SDLC-Automation/internal/core/model"
	"github.com/Shivagad/SDLC-Automation/internal/llm"
	"github.com/Shivagad/SDLC-Automation/internal/store"
)

// Agent derives an architecture design, a UML class model, and a
// verification report from the stored requirements. Its exchange with
// the model is independent of the analyst's and grows the same way.
type Agent struct {
	LLM     llm.ChatClient
	Store   *store.Store
	Prompts config.ArchitectPrompts

	history []llm.Message
}

func NewAgent(llmClient llm.ChatClient, ctx *store.Store, prompts config.ArchitectPrompts) *Agent {
	return &Agent{
		LLM:     llmClient,
		Store:   ctx,
		Prompts: prompts,
	}
}

func (a *Agent) send(ctx context.Context, prompt string) (string, *model.Failure) {
	reply, err := a.LLM.Chat(ctx, a.history, prompt)
	if err != nil {
		return "", model.TransportFailure(fmt.Sprintf("model call failed: %v", err))
	}
	a.history = append(a.history,
		llm.Message{Role: llm.RoleUser, Content: prompt},
		llm.Message{Role: llm.RoleAssistant, Content: reply},
	)
	return reply, nil
}

func (a *Agent) latestRequirements(requirements *model.RequirementSet) (*model.RequirementSet, *model.Failure) {
	if requirements != nil {
		return requirements, nil
	}
	latest, ok := a.Store.LatestRequirements()
	if !ok {
		return nil, model.PreconditionFailure("no requirements available")
	}
	return &latest, nil
}

// GenerateArchitectureDesign produces a high-level architecture from
// the given requirement set, defaulting to the most recently stored
// one, and stores the resulting artifact.
func (a *Agent) GenerateArchitectureDesign(ctx context.Context, requirements *model.RequirementSet) (*model.Architecture, *model.Failure) {
	requirements, fail := a.latestRequirements(requirements)
	if fail != nil {
		return nil, fail
	}

	serialized, err := json.MarshalIndent(requirements, "", "  ")
	if err != nil {
		return nil, model.ParseFailure("failed to serialize requirements", "")
	}

	prompt := fmt.Sprintf(a.Prompts.Design, string(serialized))

	reply, fail := a.send(ctx, prompt)
	if fail != nil {
		return nil, fail
	}

	architecture, parseErr := common.ParseJSON[model.Architecture](reply)
	if parseErr != nil {
		return nil, model.ParseFailure("failed to parse architecture design", reply)
	}

	a.Store.AddDesignArtifact(store.KindArchitecture, architecture)

	return &architecture, nil
}

// GenerateUMLClassDiagram derives a class model from the given
// architecture, defaulting to the latest stored one.
func (a *Agent) GenerateUMLClassDiagram(ctx context.Context, architecture *model.Architecture) (*model.UMLModel, *model.Failure) {
	if architecture == nil {
		latest, ok := a.Store.LatestArtifact(store.KindArchitecture)
		if !ok {
			return nil, model.PreconditionFailure("no architecture design available")
		}
		arch, ok := latest.(model.Architecture)
		if !ok {
			return nil, model.PreconditionFailure("stored architecture artifact has unexpected shape")
		}
		architecture = &arch
	}

	serialized, err := json.MarshalIndent(architecture, "", "  ")
	if err != nil {
		return nil, model.ParseFailure("failed to serialize architecture", "")
	}

	prompt := fmt.Sprintf(a.Prompts.UML, string(serialized))

	reply, fail := a.send(ctx, prompt)
	if fail != nil {
		return nil, fail
	}

	uml, parseErr := common.ParseJSON[model.UMLModel](reply)
	if parseErr != nil {
		return nil, model.ParseFailure("failed to parse UML diagram", reply)
	}

	a.Store.AddDesignArtifact(store.KindUMLClassDiagram, uml)

	return &uml, nil
}

// VerifyDesign cross-checks the latest architecture against the given
// requirement set. The report is returned only, never persisted.
func (a *Agent) VerifyDesign(ctx context.Context, requirements *model.RequirementSet) (*model.VerificationReport, *model.Failure) {
	requirements, fail := a.latestRequirements(requirements)
	if fail != nil {
		return nil, fail
	}

	latest, ok := a.Store.LatestArtifact(store.KindArchitecture)
	if !ok {
		return nil, model.PreconditionFailure("no architecture design to verify")
	}

	reqJSON, err := json.MarshalIndent(requirements, "", "  ")
	if err != nil {
		return nil, model.ParseFailure("failed to serialize requirements", "")
	}
	archJSON, err := json.MarshalIndent(latest, "", "  ")
	if err != nil {
		return nil, model.ParseFailure("failed to serialize architecture", "")
	}

	prompt := fmt.Sprintf(a.Prompts.Verify, string(reqJSON), string(archJSON))

	reply, fail := a.send(ctx, prompt)
	if fail != nil {
		return nil, fail
	}

	report, parseErr := common.ParseJSON[model.VerificationReport](reply)
	if parseErr != nil {
		return nil, model.ParseFailure("failed to parse verification report", reply)
	}

	return &report, nil
}
