package presets

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fraudlens/internal/preset"
	"github.com/abhisek/fraudlens/internal/router"
	"github.com/abhisek/fraudlens/internal/screen"
	"github.com/abhisek/fraudlens/internal/transaction"
	"github.com/abhisek/fraudlens/internal/ui/components"
	"github.com/abhisek/fraudlens/internal/ui/layout"
	"github.com/abhisek/fraudlens/internal/ui/theme"
)

// SelectedMsg is delivered to the screen below the picker once the picker
// has popped itself.
type SelectedMsg struct {
	Name string
}

// PresetsScreen lists the example transactions.
type PresetsScreen struct {
	prefix  string
	presets []preset.Preset
	menu    components.Menu
}

var _ screen.Screen = (*PresetsScreen)(nil)
var _ screen.KeyHintProvider = (*PresetsScreen)(nil)

// New creates the preset picker. featurePrefix names feature slots in the
// preview; empty means the default.
func New(featurePrefix string) *PresetsScreen {
	if featurePrefix == "" {
		featurePrefix = transaction.DefaultFeaturePrefix
	}

	all := preset.All()
	items := make([]components.MenuItem, 0, len(all))
	for _, p := range all {
		items = append(items, components.MenuItem{
			Label:       p.Label,
			Description: p.Description,
			Action:      selectCmd(p.Name),
		})
	}
	return &PresetsScreen{
		prefix:  featurePrefix,
		presets: all,
		menu:    components.NewMenu(items),
	}
}

func selectCmd(name string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PopScreenMsg{Result: SelectedMsg{Name: name}}
		}
	}
}

func (p *PresetsScreen) Init() tea.Cmd {
	return nil
}

func (p *PresetsScreen) Title() string {
	return "Examples"
}

func (p *PresetsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Load"},
		{Key: "1-3", Description: "Quick load"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PresetsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PresetsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Load an example transaction"))
	b.WriteString("\n\n")
	b.WriteString(p.menu.View())

	if sel := p.menu.Selected; sel >= 0 && sel < len(p.presets) {
		in := p.presets[sel].Input
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(
			"Amount " + transaction.FormatAmount(in.Amount) +
				" · Time " + transaction.FormatElapsed(in.Time) +
				" · " + strings.Join(nonZeroFeatures(in, p.prefix), " "),
		))
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func nonZeroFeatures(in transaction.Input, prefix string) []string {
	raw := transaction.RawFromInput(in)
	var out []string
	for i, v := range raw.Features {
		if v == "" {
			continue
		}
		out = append(out, transaction.FeatureName(prefix, i)+"="+v)
	}
	return out
}
