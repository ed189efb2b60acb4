// Package mock provides an in-memory llm.Provider for tests.
package mock

import (
	"context"
	"sync"

	"github.com/juggajay/siteproof-v2-sub000/internal/llm"
)

// Provider is a scriptable test double. ChatFn, when set, handles every
// call; otherwise a canned assistant message is returned. Requests are
// recorded for assertions.
type Provider struct {
	NameValue string
	ChatFn    func(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error)

	mu       sync.Mutex
	requests []llm.ChatRequest
}

func (p *Provider) Name() string {
	if p.NameValue == "" {
		return "mock"
	}
	return p.NameValue
}

func (p *Provider) Chat(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	p.mu.Unlock()

	if p.ChatFn != nil {
		return p.ChatFn(ctx, req)
	}
	return llm.ChatResponse{
		Message:      llm.ChatMessage{Role: llm.RoleAssistant, Content: "mock"},
		FinishReason: "stop",
	}, nil
}

// Requests returns a copy of every request seen so far.
func (p *Provider) Requests() []llm.ChatRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]llm.ChatRequest, len(p.requests))
	copy(out, p.requests)
	return out
}
