package predict

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_FastAPIRoot(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		jsonHandler(200, `{"status":"active","model_loaded":true,"version":"1.0.0"}`)(w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	h, err := newTestClient(t, srv.URL, 0).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "active", h.Status)
	assert.True(t, h.ModelLoaded)
	assert.Equal(t, "1.0.0", h.Version)
	assert.True(t, h.Compatible)
}

func TestHealth_FlaskHealthEndpoint(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", jsonHandler(200, `{"status":"healthy","model_loaded":false,"version":"1.0"}`))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	h, err := newTestClient(t, srv.URL, 0).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.False(t, h.ModelLoaded)
	assert.True(t, h.Compatible)
}

func TestHealth_NoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, 0).Health(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindMalformedResponse, KindOf(err))
}

func TestVersionCompatible(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"1.0.0", true},
		{"v1.2.3", true},
		{"1.0", true},
		{"0.9.1", false},
		{"v0.1", false},
		{"", true},
		{"dev-build", true},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, versionCompatible(tt.v), "version %q", tt.v)
	}
}
