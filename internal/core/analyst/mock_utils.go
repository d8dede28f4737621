package analyst

import (
	"context"

	"github.com/Shivagad/SDLC-Automation/internal/llm"
)

type MockChatClient struct {
	Response      string
	ResponseQueue []string
	Err           error

	Prompts     []string
	HistoryLens []int
}

func (m *MockChatClient) Chat(ctx context.Context, history []llm.Message, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	m.HistoryLens = append(m.HistoryLens, len(history))
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}
