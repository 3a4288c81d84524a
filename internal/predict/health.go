package predict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/mod/semver"
)

// MinServiceVersion is the oldest service version this client understands.
const MinServiceVersion = "v1.0.0"

// healthPaths are probed in order; deployments expose one or the other.
var healthPaths = []string{"/health", "/"}

// Health describes the service as reported by its health endpoint.
type Health struct {
	Status      string
	ModelLoaded bool
	Version     string
	// Compatible is false when Version parses as semver and is older than
	// MinServiceVersion. Unparseable versions are assumed compatible.
	Compatible bool
}

type wireHealth struct {
	Status      string `json:"status"`
	ModelLoaded *bool  `json:"model_loaded"`
	Version     string `json:"version"`
}

// Health probes the service. A non-nil error means the service could not
// be reached or did not answer with a health document.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var lastErr error
	for _, path := range healthPaths {
		h, err := c.probe(ctx, path)
		if err == nil {
			return h, nil
		}
		lastErr = err
		if KindOf(err) != KindServerRejected && KindOf(err) != KindMalformedResponse {
			break
		}
	}
	return nil, lastErr
}

func (c *Client) probe(ctx context.Context, path string) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.endpoint(path), nil)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "Could not build request.", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Kind:    KindServerRejected,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("Health check failed (HTTP %d).", resp.StatusCode),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, c.transportError(ctx, err)
	}

	var w wireHealth
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &Error{
			Kind:    KindMalformedResponse,
			Status:  resp.StatusCode,
			Message: "Health endpoint did not return JSON.",
			Err:     err,
		}
	}

	h := &Health{
		Status:      w.Status,
		ModelLoaded: w.ModelLoaded == nil || *w.ModelLoaded,
		Version:     w.Version,
		Compatible:  versionCompatible(w.Version),
	}
	return h, nil
}

// versionCompatible reports whether v is at least MinServiceVersion.
// Versions like "1.0" are accepted without the leading "v".
func versionCompatible(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return true
	}
	return semver.Compare(v, MinServiceVersion) >= 0
}
