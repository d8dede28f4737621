package analyst

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

// Agent turns raw stakeholder text into structured requirements and user
// stories. It keeps one ongoing exchange with the model: the first call
// starts an empty transcript and every later call appends to it, so the
// model sees prior prompts and replies as context. The transcript is
// unbounded; growth is accepted as an external constraint.
type Agent struct {
	LLM     llm.ChatClient
	Store   *store.Store
	Prompts config.AnalystPrompts

	history []llm.Message
}

func NewAgent(llmClient llm.ChatClient, ctx *store.Store, prompts config.AnalystPrompts) *Agent {
	return &Agent{
		LLM:     llmClient,
		Store:   ctx,
		Prompts: prompts,
	}
}

// send submits the prompt with the accumulated transcript and records
// both turns. The reply is recorded even when it later fails to parse,
// matching what the model actually saw.
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

// AnalyzeRequirements extracts a structured requirement set from raw
// input and stores it under a fresh id.
func (a *Agent) AnalyzeRequirements(ctx context.Context, rawInput string) (*model.RequirementSet, *model.Failure) {
	prompt := fmt.Sprintf(a.Prompts.Analyze, rawInput)

	reply, fail := a.send(ctx, prompt)
	if fail != nil {
		return nil, fail
	}

	requirements, err := common.ParseJSON[model.RequirementSet](reply)
	if err != nil {
		return nil, model.ParseFailure("failed to parse requirements", reply)
	}

	a.Store.AddRequirement(a.Store.NextRequirementID(), requirements)

	return &requirements, nil
}

// GenerateUserStories produces INVEST-style stories from the given
// requirement set, defaulting to the most recently stored one. Each
// story is stored individually under its own id.
func (a *Agent) GenerateUserStories(ctx context.Context, requirements *model.RequirementSet) (*model.UserStoryBatch, *model.Failure) {
	if requirements == nil {
		latest, ok := a.Store.LatestRequirements()
		if !ok {
			return nil, model.PreconditionFailure("no requirements available")
		}
		requirements = &latest
	}

	serialized, err := json.MarshalIndent(requirements, "", "  ")
	if err != nil {
		return nil, model.ParseFailure("failed to serialize requirements", "")
	}

	prompt := fmt.Sprintf(a.Prompts.Stories, string(serialized))

	reply, fail := a.send(ctx, prompt)
	if fail != nil {
		return nil, fail
	}

	batch, parseErr := common.ParseJSON[model.UserStoryBatch](reply)
	if parseErr != nil {
		return nil, model.ParseFailure("failed to parse user stories", reply)
	}

	for _, story := range batch.UserStories {
		a.Store.AddUserStory(story.ID, story)
	}

	return &batch, nil
}
