package llm

import (
	"context"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of an agent's exchange with the model.
type Message struct {
	Role    string
	Content string
}

// ChatClient submits a prompt together with the prior exchange transcript
// and returns the model's free-form reply. Clients are stateless; the
// transcript is owned by the calling agent.
type ChatClient interface {
	Chat(ctx context.Context, history []Message, prompt string) (string, error)
}
