package oracle

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned reply for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays canned replies in order and records every
// request it saw. Safe for concurrent use. An exhausted queue answers
// with *UnavailableError.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse
	seen  []Request
}

// NewMockProvider builds a provider preloaded with replies.
func NewMockProvider(replies ...MockResponse) *MockProvider {
	return &MockProvider{queue: replies}
}

// AddResponse queues another reply.
func (m *MockProvider) AddResponse(r MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, r)
}

func (m *MockProvider) ModelID() string { return "mock" }

func (m *MockProvider) Complete(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seen = append(m.seen, req)

	if len(m.queue) == 0 {
		return nil, &UnavailableError{}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content: next.Content,
		Usage:   next.Usage,
		Model:   "mock",
	}, nil
}

// Requests returns a copy of every request seen so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.seen))
	copy(out, m.seen)
	return out
}

// CallCount reports how many calls have been made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.seen)
}
