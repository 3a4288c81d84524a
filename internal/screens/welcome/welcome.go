package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fraudlens/internal/router"
	"github.com/abhisek/fraudlens/internal/screen"
	"github.com/abhisek/fraudlens/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 300 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

const shieldArt = `   ╭─────────╮
   │  ╭───╮  │
   │  │ $ │  │
   │  ╰───╯  │
    ╲       ╱
      ╲   ╱
        ▾`

// scanFrames sweep across the shield while the splash plays.
var scanFrames = []string{"◜", "◝", "◞", "◟"}

type tickMsg time.Time

// WelcomeScreen shows a short splash, then replaces itself with the
// screen produced by next.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		next: next,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		w.tickCount++
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

// transition emits the replace message once.
func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	nextScreen := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: nextScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	shield := lipgloss.NewStyle().Foreground(theme.Primary).Render(shieldArt)
	if w.elapsed >= phase1End {
		scan := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(scanFrames[w.tickCount%len(scanFrames)])
		lines := strings.Split(shield, "\n")
		if len(lines) > 2 {
			lines[2] = scan + " " + lines[2] + " " + scan
		}
		shield = strings.Join(lines, "\n")
	}
	sections = append(sections, shield)

	if w.elapsed >= phase1End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Real-time transaction fraud screening"),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
