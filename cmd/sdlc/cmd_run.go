package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shivagad/SDLC-Automation/internal/config"
	"github.com/Shivagad/SDLC-Automation/internal/core"
	"github.com/Shivagad/SDLC-Automation/internal/core/model"
	"github.com/Shivagad/SDLC-Automation/internal/llm"
)

func newRunCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline: analyze, stories, architecture, UML, verify",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg.ApplyEnv()

			ctx := context.Background()
			llmClient, err := llm.NewClient(ctx, cfg.LLM)
			if err != nil {
				return err
			}

			rawInput, err := readInput(inputPath)
			if err != nil {
				return err
			}

			w := core.NewWorkflow(llmClient, cfg)

			fmt.Println("=== Phase 1: Requirements Analysis ===")
			requirements, fail := w.AnalyzeRequirements(ctx, rawInput)
			printResult(requirements, fail)

			fmt.Println("=== Generating User Stories ===")
			stories, fail := w.GenerateUserStories(ctx, nil)
			printResult(stories, fail)

			fmt.Println("=== Phase 2: Architecture Design ===")
			architecture, fail := w.GenerateArchitectureDesign(ctx, nil)
			printResult(architecture, fail)

			fmt.Println("=== Generating UML Class Diagram ===")
			uml, fail := w.GenerateUMLClassDiagram(ctx, nil)
			printResult(uml, fail)

			fmt.Println("=== Verifying Design ===")
			verification, fail := w.VerifyDesign(ctx, nil)
			printResult(verification, fail)

			if text, fail := w.ArchitectureDiagram(); fail == nil {
				fmt.Println("=== Architecture Diagram (Mermaid) ===")
				fmt.Println(text)
			}
			if text, fail := w.UMLClassDiagram(); fail == nil {
				fmt.Println("=== UML Class Diagram (Mermaid) ===")
				fmt.Println(text)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "file with raw requirements text (default: stdin)")

	return cmd
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// printResult dumps either the artifact or the failure object as
// indented JSON. A failed phase does not stop the run; later phases
// proceed with whatever artifacts exist.
func printResult(artifact any, fail *model.Failure) {
	var out []byte
	if fail != nil {
		out, _ = json.MarshalIndent(fail, "", "  ")
	} else {
		out, _ = json.MarshalIndent(artifact, "", "  ")
	}
	fmt.Println(string(out))
	fmt.Println()
}
