package model

type RequirementCoverage struct {
	Covered            []string `json:"covered"`
	Missing            []string `json:"missing"`
	CoveragePercentage float64  `json:"coverage_percentage"`
}

type NFRSatisfied struct {
	ID        string `json:"id"`
	Rationale string `json:"rationale"`
}

type NFRNotSatisfied struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type NFRSatisfaction struct {
	Satisfied    []NFRSatisfied    `json:"satisfied"`
	NotSatisfied []NFRNotSatisfied `json:"not_satisfied"`
}

type ConsistencyCheck struct {
	IsConsistent bool     `json:"is_consistent"`
	Issues       []string `json:"issues"`
}

// VerificationReport is derived from requirements plus the latest
// architecture. It is returned to the caller and never stored.
type VerificationReport struct {
	RequirementCoverage RequirementCoverage `json:"requirement_coverage"`
	NFRSatisfaction     NFRSatisfaction     `json:"nfr_satisfaction"`
	ConsistencyCheck    ConsistencyCheck    `json:"consistency_check"`
	Risks               []string            `json:"risks"`
	Recommendations     []string            `json:"recommendations"`
}
