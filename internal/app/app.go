package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fraudlens/internal/predict"
	"github.com/abhisek/fraudlens/internal/router"
	"github.com/abhisek/fraudlens/internal/screen"
	"github.com/abhisek/fraudlens/internal/screens/analyze"
	"github.com/abhisek/fraudlens/internal/screens/welcome"
	"github.com/abhisek/fraudlens/internal/ui/layout"
)

// healthInterval is how often the header status is refreshed.
const healthInterval = 30 * time.Second

// HealthChecker reports the state of the prediction service.
type HealthChecker interface {
	Health(ctx context.Context) (*predict.Health, error)
}

// Options configures the application.
type Options struct {
	Predictor predict.Predictor

	// FeaturePrefix labels the feature fields; it should match the
	// prefix the client sends.
	FeaturePrefix string

	// Health is probed on startup and periodically. Nil disables the probe.
	Health HealthChecker

	// SkipSplash starts directly on the analyze screen.
	SkipSplash bool
}

type healthMsg struct {
	Health *predict.Health
	Err    error
}

type healthTickMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	health HealthChecker
	status layout.ServiceStatus
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	analyzeFactory := func() screen.Screen {
		return analyze.New(opts.Predictor, opts.FeaturePrefix)
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = analyzeFactory()
	} else {
		initial = welcome.New(analyzeFactory)
	}

	return AppModel{
		router: router.New(initial),
		health: opts.Health,
	}
}

func (m AppModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if active := m.router.Active(); active != nil {
		cmds = append(cmds, active.Init())
	}
	cmds = append(cmds, m.checkHealth())
	return tea.Batch(cmds...)
}

func (m AppModel) checkHealth() tea.Cmd {
	if m.health == nil {
		return nil
	}
	hc := m.health
	return func() tea.Msg {
		h, err := hc.Health(context.Background())
		return healthMsg{Health: h, Err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case healthMsg:
		m.status = statusFromHealth(msg.Health, msg.Err)
		return m, tea.Tick(healthInterval, func(time.Time) tea.Msg {
			return healthTickMsg{}
		})

	case healthTickMsg:
		return m, m.checkHealth()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.Close()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// statusFromHealth turns a probe outcome into the header indicator.
func statusFromHealth(h *predict.Health, err error) layout.ServiceStatus {
	switch {
	case err != nil || h == nil:
		return layout.ServiceStatus{Known: true, Text: "API Offline"}
	case !h.ModelLoaded:
		return layout.ServiceStatus{Known: true, Text: "Model not loaded"}
	case !h.Compatible:
		return layout.ServiceStatus{Known: true, Text: fmt.Sprintf("API %s incompatible", h.Version)}
	}
	text := "API Connected"
	if h.Version != "" {
		text += " " + displayVersion(h.Version)
	}
	return layout.ServiceStatus{Known: true, Healthy: true, Text: text}
}

func displayVersion(v string) string {
	if v != "" && v[0] != 'v' {
		return "v" + v
	}
	return v
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model := newAppModel(opts)
	defer model.router.Close()

	p := tea.NewProgram(model)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
