package presenter

import (
	"context"

	"github.com/abhisek/fraudlens/internal/predict"
)

// Presenter owns the result state and the submission generation counter.
// It is not safe for concurrent use; call it from the update loop only.
type Presenter struct {
	state      State
	generation uint64
	cancel     context.CancelFunc
}

// New returns a Presenter in the Idle state.
func New() *Presenter {
	return &Presenter{state: Idle{}}
}

// State returns the active state.
func (p *Presenter) State() State {
	return p.state
}

// Generation returns the most recently issued generation.
func (p *Presenter) Generation() uint64 {
	return p.generation
}

// Begin starts a new submission and returns its generation. Any request
// still in flight is cancelled; its late outcome will not match. cancel
// releases the new request and may be nil.
func (p *Presenter) Begin(cancel context.CancelFunc) uint64 {
	p.release()
	p.generation++
	p.cancel = cancel
	p.state = Loading{Generation: p.generation}
	return p.generation
}

// Resolve applies an outcome for generation gen. It reports false and
// leaves the state untouched when gen is stale or nothing is loading.
func (p *Presenter) Resolve(gen uint64, result *predict.Result, err error) bool {
	loading, ok := p.state.(Loading)
	if !ok || loading.Generation != gen || gen != p.generation {
		return false
	}
	p.release()

	switch {
	case err != nil:
		p.state = Failure{Kind: predict.KindOf(err), Message: failureMessage(err)}
	case result == nil:
		p.state = Failure{Kind: predict.KindMalformedResponse, Message: "The prediction service returned no result."}
	default:
		p.state = Success{Result: *result}
	}
	return true
}

// Reset returns to Idle and abandons any request in flight.
func (p *Presenter) Reset() {
	p.release()
	p.state = Idle{}
}

// Close abandons any request in flight without changing state.
func (p *Presenter) Close() {
	p.release()
}

func (p *Presenter) release() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func failureMessage(err error) string {
	if msg := predict.MessageOf(err); msg != "" {
		return msg
	}
	return "Prediction failed."
}
