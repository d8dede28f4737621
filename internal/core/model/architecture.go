package model

type Component struct {
	Name           string   `json:"name"`
	Responsibility string   `json:"responsibility"`
	Technology     string   `json:"technology"`
	Interfaces     []string `json:"interfaces"`
}

type DataStorage struct {
	Databases []string `json:"databases"`
	Rationale string   `json:"rationale"`
}

type TechnologyStack struct {
	Backend        []string `json:"backend"`
	Frontend       []string `json:"frontend"`
	Infrastructure []string `json:"infrastructure"`
}

// Architecture is the architect's high-level design artifact.
type Architecture struct {
	ArchitectureType          string          `json:"architecture_type"`
	Components                []Component     `json:"components"`
	CommunicationPatterns     []string        `json:"communication_patterns"`
	DataStorage               DataStorage     `json:"data_storage"`
	TechnologyStack           TechnologyStack `json:"technology_stack"`
	DesignPatterns            []string        `json:"design_patterns"`
	ScalabilityStrategy       string          `json:"scalability_strategy"`
	PerformanceConsiderations []string        `json:"performance_considerations"`
}
