package presenter

import "github.com/abhisek/fraudlens/internal/predict"

// State is what the result panel currently shows. Exactly one variant is
// active: Idle, Loading, Success or Failure.
type State interface {
	isState()
}

// Idle is the initial state; nothing has been submitted.
type Idle struct{}

// Loading means a request with Generation is in flight.
type Loading struct {
	Generation uint64
}

// Success holds the most recent classification.
type Success struct {
	Result predict.Result
}

// Failure holds a user-facing error message.
type Failure struct {
	Kind    predict.Kind
	Message string
}

func (Idle) isState()    {}
func (Loading) isState() {}
func (Success) isState() {}
func (Failure) isState() {}
