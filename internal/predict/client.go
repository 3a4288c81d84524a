package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/fraudlens/internal/transaction"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// probabilityTolerance bounds |fraud + genuine - 1| for a valid result.
const probabilityTolerance = 0.001

// Predictor classifies a transaction. Every error it returns is a *Error.
type Predictor interface {
	Predict(ctx context.Context, in transaction.Input) (*Result, error)
}

// Client talks to the remote classification service over HTTP.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

var _ Predictor = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Client. The config is validated up front.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// Predict POSTs in to /predict and classifies the outcome. The request is
// abandoned once the configured timeout elapses.
func (c *Client) Predict(ctx context.Context, in transaction.Input) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(in.Fields(c.cfg.FeaturePrefix))
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "Could not encode transaction.", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.endpoint("/predict"), bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "Could not build request.", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, c.transportError(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Kind:    KindServerRejected,
			Status:  resp.StatusCode,
			Message: rejectionMessage(resp.StatusCode, data),
		}
	}

	result, err := parseResult(data)
	if err != nil {
		return nil, &Error{
			Kind:    KindMalformedResponse,
			Status:  resp.StatusCode,
			Message: "Unexpected response from the prediction service.",
			Err:     err,
		}
	}
	return result, nil
}

func requestID(ctx context.Context) string {
	if id := RequestIDFrom(ctx); id != "" {
		return id
	}
	return uuid.New().String()
}

// transportError classifies a failure that happened before a complete
// response was read.
func (c *Client) transportError(ctx context.Context, err error) *Error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return c.timeoutError(err)
	case errors.Is(ctx.Err(), context.Canceled):
		return &Error{Kind: KindCanceled, Message: "Request was canceled.", Err: err}
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return c.timeoutError(err)
	}

	return &Error{
		Kind:    KindNetworkUnreachable,
		Message: fmt.Sprintf("Cannot connect to API. Please ensure the service is running at %s.", c.cfg.BaseURL),
		Err:     err,
	}
}

func (c *Client) timeoutError(err error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: fmt.Sprintf("The prediction service did not respond within %s.", c.cfg.Timeout),
		Err:     err,
	}
}

// rejectionMessage pulls a human-readable message out of an error body.
// Deployments disagree on the shape, so several keys are tried.
func rejectionMessage(status int, data []byte) string {
	fallback := fmt.Sprintf("Prediction failed (HTTP %d).", status)

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		text := strings.TrimSpace(string(data))
		if text != "" && len(text) <= 200 && !strings.HasPrefix(text, "<") {
			return text
		}
		return fallback
	}

	for _, key := range []string{"error", "detail", "message"} {
		if msg := messageFrom(body[key]); msg != "" {
			return msg
		}
	}
	return fallback
}

// messageFrom handles plain strings, {"message": ...} objects and FastAPI
// validation lists of {"msg": ...}.
func messageFrom(v any) string {
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		for _, key := range []string{"message", "msg", "detail"} {
			if s, ok := v[key].(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	case []any:
		var parts []string
		for _, item := range v {
			if s := messageFrom(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	}
	return ""
}

// wireResult mirrors the success body.
type wireResult struct {
	Prediction         string   `json:"prediction"`
	Confidence         float64  `json:"confidence"`
	FraudProbability   float64  `json:"fraud_probability"`
	GenuineProbability *float64 `json:"genuine_probability"`
	RiskLevel          string   `json:"risk_level"`
	Recommendation     string   `json:"recommendation"`
}

// parseResult validates and normalizes a success body into the canonical
// fraction unit.
func parseResult(data []byte) (*Result, error) {
	if err := validateResultBody(data); err != nil {
		return nil, err
	}

	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}

	label, ok := ParseLabel(w.Prediction)
	if !ok {
		return nil, fmt.Errorf("unknown prediction label %q", w.Prediction)
	}

	fraud, genuine, percent, err := normalizeProbabilities(w.FraudProbability, w.GenuineProbability)
	if err != nil {
		return nil, err
	}

	// Percent-scale bodies report confidence in percent too. Fraction-scale
	// bodies disagree between deployments, so a value <= 1 is a fraction.
	confidence := w.Confidence
	if !percent && confidence <= 1 {
		confidence *= 100
	}
	if confidence > 100 {
		return nil, fmt.Errorf("confidence %v out of range", w.Confidence)
	}

	risk, ok := ParseRiskLevel(w.RiskLevel)
	if !ok {
		risk = RiskFromProbability(fraud)
	}

	rec := strings.TrimSpace(w.Recommendation)
	if rec == "" {
		rec = DefaultRecommendation
	}

	return &Result{
		Label:              label,
		FraudProbability:   fraud,
		GenuineProbability: genuine,
		Confidence:         confidence,
		Risk:               risk,
		Recommendation:     rec,
	}, nil
}

// normalizeProbabilities converts percent-scale values to fractions and
// reports whether the body was percent-scale. A missing genuine probability
// is derived from the fraud probability; a present pair must sum to one.
func normalizeProbabilities(fraud float64, genuine *float64) (float64, float64, bool, error) {
	if genuine == nil {
		percent := fraud > 1
		if percent {
			fraud /= 100
		}
		if fraud > 1 {
			return 0, 0, false, fmt.Errorf("fraud probability %v out of range", fraud)
		}
		return fraud, 1 - fraud, percent, nil
	}

	g := *genuine
	percent := math.Abs(fraud+g-100) <= 0.1
	if percent {
		fraud /= 100
		g /= 100
	}
	if math.Abs(fraud+g-1) > probabilityTolerance {
		return 0, 0, false, fmt.Errorf("probabilities %v and %v do not sum to 1", fraud, g)
	}
	return fraud, g, percent, nil
}
