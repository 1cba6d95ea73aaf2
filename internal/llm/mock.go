package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted outcome: either a content payload, such
// as a generated exercise or study-plan object, or an error standing in
// for a provider failure.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for tests. Outcomes are
// scripted up front and served in order, and every request is retained
// so tests can assert on the prompts, schemas and purposes the tutoring
// code sends. Exhausting the script reports the provider as
// unavailable, which is how tests drive the offline fallback paths.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse

	// Calls holds every request in arrival order.
	Calls []Request
}

// NewMockProvider scripts a provider with the given outcomes.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{script: responses}
}

// Generate records the request and pops the next scripted outcome. An
// empty script reports ErrProviderUnavailable, the same error shape a
// real backend outage produces.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.script) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	next := m.script[0]
	m.script = m.script[1:]

	if next.Err != nil {
		return nil, next.Err
	}

	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends one more scripted outcome.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

// CallCount returns how many Generate calls have arrived.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
