package model

type FailureKind string

const (
	// FailureParse means the model reply could not be interpreted as the
	// expected structured shape even after fence stripping.
	FailureParse FailureKind = "upstream_parse_failure"
	// FailurePrecondition means a required prior artifact is missing
	// from the store.
	FailurePrecondition FailureKind = "precondition_unmet"
	// FailureTransport means a remote call did not return success.
	FailureTransport FailureKind = "transport_failure"
)

// Failure is returned as data instead of an error so the orchestration
// can keep going with whatever artifacts did succeed. RawResponse holds
// the unparsed model reply when one exists.
type Failure struct {
	Kind        FailureKind `json:"kind"`
	Reason      string      `json:"reason"`
	RawResponse string      `json:"raw_response,omitempty"`
}

func ParseFailure(reason, raw string) *Failure {
	return &Failure{Kind: FailureParse, Reason: reason, RawResponse: raw}
}

func PreconditionFailure(reason string) *Failure {
	return &Failure{Kind: FailurePrecondition, Reason: reason}
}

func TransportFailure(reason string) *Failure {
	return &Failure{Kind: FailureTransport, Reason: reason}
}
