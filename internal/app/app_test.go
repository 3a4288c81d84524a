package app

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fraudlens/internal/predict"
	"github.com/abhisek/fraudlens/internal/router"
)

type stubHealth struct {
	health *predict.Health
	err    error
	calls  int
}

func (s *stubHealth) Health(context.Context) (*predict.Health, error) {
	s.calls++
	return s.health, s.err
}

func TestStatusFromHealth(t *testing.T) {
	tests := []struct {
		name    string
		health  *predict.Health
		err     error
		text    string
		healthy bool
	}{
		{"offline", nil, errors.New("dial tcp: refused"), "API Offline", false},
		{"no model", &predict.Health{Status: "healthy", ModelLoaded: false, Compatible: true}, nil, "Model not loaded", false},
		{"old service", &predict.Health{ModelLoaded: true, Version: "0.9.0", Compatible: false}, nil, "API 0.9.0 incompatible", false},
		{"connected", &predict.Health{ModelLoaded: true, Version: "1.2.0", Compatible: true}, nil, "API Connected v1.2.0", true},
		{"no version", &predict.Health{ModelLoaded: true, Compatible: true}, nil, "API Connected", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusFromHealth(tt.health, tt.err)
			assert.True(t, got.Known)
			assert.Equal(t, tt.text, got.Text)
			assert.Equal(t, tt.healthy, got.Healthy)
		})
	}
}

func TestInitProbesHealth(t *testing.T) {
	hc := &stubHealth{health: &predict.Health{ModelLoaded: true, Version: "1.0.0", Compatible: true}}
	m := newAppModel(Options{Predictor: predict.NewMockPredictor(), Health: hc, SkipSplash: true})

	cmd := m.checkHealth()
	require.NotNil(t, cmd)
	msg := cmd()

	updated, _ := m.Update(msg)
	am := updated.(AppModel)
	assert.Equal(t, 1, hc.calls)
	assert.Equal(t, "API Connected v1.0.0", am.status.Text)
}

func TestNilHealthCheckerSkipsProbe(t *testing.T) {
	m := newAppModel(Options{Predictor: predict.NewMockPredictor(), SkipSplash: true})
	assert.Nil(t, m.checkHealth())
}

func TestSkipSplashStartsOnAnalyze(t *testing.T) {
	m := newAppModel(Options{Predictor: predict.NewMockPredictor(), SkipSplash: true})
	assert.Equal(t, "Analyze Transaction", m.router.Active().Title())
}

func TestEscPopsOnlyAboveRoot(t *testing.T) {
	m := newAppModel(Options{Predictor: predict.NewMockPredictor(), SkipSplash: true})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd, "esc at root should do nothing")

	_, cmd = m.Update(tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	m.Update(cmd())
	require.Equal(t, 2, m.router.Depth())

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestViewShowsHeaderAndHints(t *testing.T) {
	m := newAppModel(Options{Predictor: predict.NewMockPredictor(), SkipSplash: true})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated, _ = updated.Update(healthMsg{Err: errors.New("refused")})

	out := updated.(AppModel).render()
	assert.Contains(t, out, "FraudLens")
	assert.Contains(t, out, "API Offline")
	assert.Contains(t, out, "Ctrl+P")
}

func TestTooSmallTerminal(t *testing.T) {
	m := newAppModel(Options{Predictor: predict.NewMockPredictor(), SkipSplash: true})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	assert.Contains(t, updated.(AppModel).render(), "Terminal too small")
}
