package predict

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/abhisek/fraudlens/internal/transaction"
)

// EnvBaseURL names the only environment variable FraudLens reads.
const EnvBaseURL = "FRAUDLENS_API_URL"

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 10 * time.Second
)

// Config holds prediction service settings.
type Config struct {
	// BaseURL is the service root; /predict and / are resolved against it.
	BaseURL string

	// Timeout bounds a single request. Default: 10s.
	Timeout time.Duration

	// FeaturePrefix is the wire key prefix for feature slots. Default: "F".
	FeaturePrefix string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		Timeout:       DefaultTimeout,
		FeaturePrefix: transaction.DefaultFeaturePrefix,
	}
}

// ConfigFromEnv builds a Config from the environment, falling back to
// defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if u := os.Getenv(EnvBaseURL); u != "" {
		cfg.BaseURL = u
	}
	return cfg
}

// Validate checks that the base URL is an absolute http(s) URL and the
// timeout is positive.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL %q must use http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base URL %q has no host", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if strings.TrimSpace(c.FeaturePrefix) == "" {
		return fmt.Errorf("feature prefix must not be empty")
	}
	return nil
}

// endpoint joins path onto the base URL.
func (c Config) endpoint(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + path
}
