package predict

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/fraudlens/internal/transaction"
)

// LoggingPredictor is a decorator that logs one line per request.
type LoggingPredictor struct {
	inner  Predictor
	logger *log.Logger
}

// WithLogging wraps a Predictor with request logging. A nil logger uses
// the standard logger.
func WithLogging(p Predictor, logger *log.Logger) Predictor {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingPredictor{inner: p, logger: logger}
}

func (l *LoggingPredictor) Predict(ctx context.Context, in transaction.Input) (*Result, error) {
	id := RequestIDFrom(ctx)
	if id == "" {
		id = uuid.New().String()
		ctx = WithRequestID(ctx, id)
	}

	start := time.Now()
	res, err := l.inner.Predict(ctx, in)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		l.logger.Printf("predict id=%s latency_ms=%d ok=false kind=%s err=%q",
			id, latency, KindOf(err), err.Error())
		return nil, err
	}

	l.logger.Printf("predict id=%s latency_ms=%d ok=true label=%s fraud_probability=%.4f risk=%s",
		id, latency, res.Label, res.FraudProbability, res.Risk)
	return res, nil
}
