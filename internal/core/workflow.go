package core

import (
	"context"
	"time"

	"github.com/Shivagad/SDLC-Automation/internal/config"
	"github.com/Shivagad/SDLC-Automation/internal/core/analyst"
	"github.com/Shivagad/SDLC-Automation/internal/core/architect"
	"github.com/Shivagad/SDLC-Automation/internal/core/diagram"
	"github.com/Shivagad/SDLC-Automation/internal/core/model"
	"github.com/Shivagad/SDLC-Automation/internal/core/report"
	"github.com/Shivagad/SDLC-Automation/internal/llm"
	"github.com/Shivagad/SDLC-Automation/internal/store"
)

// Workflow is the root object of the pipeline: it owns the shared
// context store, both agents, and the diagram renderer. All operations
// are synchronous and sequential; failures come back as data so later
// phases can proceed with whatever artifacts succeeded.
type Workflow struct {
	Store     *store.Store
	Analyst   *analyst.Agent
	Architect *architect.Agent
	Renderer  *diagram.Renderer
}

func NewWorkflow(llmClient llm.ChatClient, cfg *config.Config) *Workflow {
	ctx := store.New()
	return &Workflow{
		Store:     ctx,
		Analyst:   analyst.NewAgent(llmClient, ctx, cfg.Prompts.Analyst),
		Architect: architect.NewAgent(llmClient, ctx, cfg.Prompts.Architect),
		Renderer:  diagram.NewRenderer(cfg.Render.BaseURL, time.Duration(cfg.Render.TimeoutSeconds)*time.Second),
	}
}

func (w *Workflow) AnalyzeRequirements(ctx context.Context, rawInput string) (*model.RequirementSet, *model.Failure) {
	return w.Analyst.AnalyzeRequirements(ctx, rawInput)
}

func (w *Workflow) GenerateUserStories(ctx context.Context, requirements *model.RequirementSet) (*model.UserStoryBatch, *model.Failure) {
	return w.Analyst.GenerateUserStories(ctx, requirements)
}

func (w *Workflow) GenerateArchitectureDesign(ctx context.Context, requirements *model.RequirementSet) (*model.Architecture, *model.Failure) {
	return w.Architect.GenerateArchitectureDesign(ctx, requirements)
}

func (w *Workflow) GenerateUMLClassDiagram(ctx context.Context, architecture *model.Architecture) (*model.UMLModel, *model.Failure) {
	return w.Architect.GenerateUMLClassDiagram(ctx, architecture)
}

func (w *Workflow) VerifyDesign(ctx context.Context, requirements *model.RequirementSet) (*model.VerificationReport, *model.Failure) {
	return w.Architect.VerifyDesign(ctx, requirements)
}

// ArchitectureDiagram renders the latest stored architecture as Mermaid
// text.
func (w *Workflow) ArchitectureDiagram() (string, *model.Failure) {
	latest, ok := w.Store.LatestArtifact(store.KindArchitecture)
	if !ok {
		return "", model.PreconditionFailure("no architecture design available")
	}
	arch, ok := latest.(model.Architecture)
	if !ok {
		return "", model.PreconditionFailure("stored architecture artifact has unexpected shape")
	}
	return diagram.ArchitectureDiagram(arch), nil
}

// UMLClassDiagram renders the latest stored UML model as Mermaid text.
func (w *Workflow) UMLClassDiagram() (string, *model.Failure) {
	latest, ok := w.Store.LatestArtifact(store.KindUMLClassDiagram)
	if !ok {
		return "", model.PreconditionFailure("no UML class diagram available")
	}
	uml, ok := latest.(model.UMLModel)
	if !ok {
		return "", model.PreconditionFailure("stored UML artifact has unexpected shape")
	}
	return diagram.UMLDiagram(uml), nil
}

// RenderDiagram fetches an image for the diagram text from the remote
// renderer. Callers fall back to the text on transport failure.
func (w *Workflow) RenderDiagram(ctx context.Context, text string) ([]byte, *model.Failure) {
	return w.Renderer.Render(ctx, text)
}

// Export renders the accumulated store contents as markdown.
func (w *Workflow) Export() string {
	return report.Export(w.Store)
}

// ExportPage renders one page of the store contents.
func (w *Workflow) ExportPage(page, pageSize int) report.Page {
	return report.ExportPage(w.Store, page, pageSize)
}
