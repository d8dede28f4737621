package model

// FunctionalRequirement is one entry of the analyst's structured output.
type FunctionalRequirement struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type NonFunctionalRequirement struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Metric      string `json:"metric"`
}

// RequirementSet is the full structured result of one analysis call.
type RequirementSet struct {
	FunctionalRequirements    []FunctionalRequirement    `json:"functional_requirements"`
	NonFunctionalRequirements []NonFunctionalRequirement `json:"non_functional_requirements"`
	Constraints               []string                   `json:"constraints"`
	Dependencies              []string                   `json:"dependencies"`
	StakeholderConcerns       []string                   `json:"stakeholder_concerns"`
}
