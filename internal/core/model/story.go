package model

// UserStory follows the INVEST-style shape the analyst prompt asks for.
// StoryPoints is expected in [1,13]; linked requirement ids are carried
// verbatim and never validated against the stored requirement set.
type UserStory struct {
	ID                 string   `json:"id"`
	AsA                string   `json:"as_a"`
	IWant              string   `json:"i_want"`
	SoThat             string   `json:"so_that"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	Priority           string   `json:"priority"`
	StoryPoints        int      `json:"story_points"`
	LinkedRequirements []string `json:"linked_requirements"`
}

// UserStoryBatch matches the top-level object the model replies with.
type UserStoryBatch struct {
	UserStories []UserStory `json:"user_stories"`
}
