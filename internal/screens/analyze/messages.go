package analyze

import (
	"github.com/abhisek/fraudlens/internal/predict"
)

// predictionDoneMsg carries the outcome of one submission. Generation ties
// it to the submission that produced it.
type predictionDoneMsg struct {
	Generation uint64
	Result     *predict.Result
	Err        error
}

// spinnerTickMsg animates the loading indicator for one generation.
type spinnerTickMsg struct {
	Generation uint64
}
