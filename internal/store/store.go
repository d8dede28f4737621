package store

import (
	"fmt"

	"github.com/Shivagad/SDLC-Automation/internal/core/model"
)

// Artifact kinds used by the architect agent.
const (
	KindArchitecture    = "architecture"
	KindUMLClassDiagram = "uml_class_diagram"
)

type RequirementRecord struct {
	ID   string               `json:"id"`
	Data model.RequirementSet `json:"data"`
}

type StoryRecord struct {
	ID   string          `json:"id"`
	Data model.UserStory `json:"data"`
}

// Store is the shared context the agents read and write for traceability.
// It is append-only: records accumulate in insertion order and are never
// mutated or removed, so "latest" always means last-appended. There is no
// locking; the store assumes a single logical thread of control. Adding
// concurrent callers would require a mutex per the design notes.
type Store struct {
	requirements []RequirementRecord
	stories      []StoryRecord
	artifacts    map[string][]any
	kinds        []string
}

func New() *Store {
	return &Store{
		artifacts: make(map[string][]any),
	}
}

func (s *Store) AddRequirement(id string, set model.RequirementSet) {
	s.requirements = append(s.requirements, RequirementRecord{ID: id, Data: set})
}

func (s *Store) AddUserStory(id string, story model.UserStory) {
	s.stories = append(s.stories, StoryRecord{ID: id, Data: story})
}

func (s *Store) AddDesignArtifact(kind string, artifact any) {
	if _, ok := s.artifacts[kind]; !ok {
		s.kinds = append(s.kinds, kind)
	}
	s.artifacts[kind] = append(s.artifacts[kind], artifact)
}

func (s *Store) Requirements() []RequirementRecord {
	return s.requirements
}

func (s *Store) UserStories() []StoryRecord {
	return s.stories
}

// DesignArtifacts returns the artifacts of one kind in insertion order.
// An unknown kind yields an empty slice, never an error.
func (s *Store) DesignArtifacts(kind string) []any {
	return s.artifacts[kind]
}

// AllDesignArtifacts returns every stored artifact keyed by kind, kinds
// ordered by first insertion.
func (s *Store) AllDesignArtifacts() map[string][]any {
	out := make(map[string][]any, len(s.artifacts))
	for k, v := range s.artifacts {
		out[k] = v
	}
	return out
}

// ArtifactKinds lists the stored kinds in first-insertion order.
func (s *Store) ArtifactKinds() []string {
	return s.kinds
}

// LatestRequirements returns the most recently stored requirement set.
func (s *Store) LatestRequirements() (model.RequirementSet, bool) {
	if len(s.requirements) == 0 {
		return model.RequirementSet{}, false
	}
	return s.requirements[len(s.requirements)-1].Data, true
}

// LatestArtifact returns the last-appended artifact of the given kind.
func (s *Store) LatestArtifact(kind string) (any, bool) {
	list := s.artifacts[kind]
	if len(list) == 0 {
		return nil, false
	}
	return list[len(list)-1], true
}

// NextRequirementID derives a fresh id from the current store size.
// Uniqueness holds by construction because records are never removed.
func (s *Store) NextRequirementID() string {
	return fmt.Sprintf("REQ-%03d", len(s.requirements)+1)
}
