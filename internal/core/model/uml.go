package model

type UMLAttribute struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Visibility string `json:"visibility"`
}

type UMLParameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type UMLMethod struct {
	Name       string         `json:"name"`
	Parameters []UMLParameter `json:"parameters"`
	ReturnType string         `json:"return_type"`
	Visibility string         `json:"visibility"`
}

type UMLClass struct {
	Name       string         `json:"name"`
	Attributes []UMLAttribute `json:"attributes"`
	Methods    []UMLMethod    `json:"methods"`
}

// UMLRelationship.Type is one of inheritance, composition, aggregation,
// association; anything else renders as a plain directed arrow.
type UMLRelationship struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Type        string `json:"type"`
	Cardinality string `json:"cardinality"`
}

// UMLModel is the class-diagram artifact produced by the architect.
type UMLModel struct {
	Classes       []UMLClass        `json:"classes"`
	Relationships []UMLRelationship `json:"relationships"`
}
