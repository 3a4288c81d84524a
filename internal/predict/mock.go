package predict

import (
	"context"
	"sync"

	"github.com/abhisek/fraudlens/internal/transaction"
)

// MockResponse is a canned outcome for the MockPredictor.
type MockResponse struct {
	Result *Result
	Err    error
}

// MockPredictor is a deterministic Predictor for testing.
// It returns canned responses in FIFO order and records all inputs.
type MockPredictor struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []transaction.Input
}

// NewMockPredictor creates a MockPredictor with the given canned responses.
func NewMockPredictor(responses ...MockResponse) *MockPredictor {
	return &MockPredictor{responses: responses}
}

// Predict returns the next canned response, or a network error when the
// queue is empty.
func (m *MockPredictor) Predict(ctx context.Context, in transaction.Input) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, in)

	if err := ctx.Err(); err != nil {
		return nil, &Error{Kind: KindCanceled, Message: "Request was canceled.", Err: err}
	}

	if len(m.responses) == 0 {
		return nil, &Error{Kind: KindNetworkUnreachable, Message: "Cannot connect to API."}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}
	r := *resp.Result
	return &r, nil
}

// AddResponse appends a canned response to the queue.
func (m *MockPredictor) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Predict calls made.
func (m *MockPredictor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
