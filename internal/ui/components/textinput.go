package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fraudlens/internal/ui/theme"
)

// numericRunes are the characters a decimal field accepts.
const numericRunes = "0123456789.-+eE"

// TextInput wraps bubbles/textinput as a labeled form field.
type TextInput struct {
	Label       string
	Model       textinput.Model
	NumericOnly bool
	Width       int
	Err         string
}

// NewTextInput creates a blurred, labeled text input.
func NewTextInput(label, placeholder string, numericOnly bool, width int) TextInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	if width > 0 {
		ti.SetWidth(width)
	}

	return TextInput{
		Label:       label,
		Model:       ti,
		NumericOnly: numericOnly,
		Width:       width,
	}
}

// Focus focuses the field and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the field.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the field has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages. Non-numeric characters are dropped when
// NumericOnly is set.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && !strings.ContainsRune(numericRunes, rune(key[0])) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label, the input box, and any inline error.
func (t TextInput) View() string {
	labelStyle := theme.Label
	border := theme.Border
	if t.Focused() {
		labelStyle = theme.Focused
		border = theme.Primary
	}
	if t.Err != "" {
		border = theme.Error
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if t.Width > 0 {
		box = box.Width(t.Width + 4)
	}

	view := labelStyle.Render(t.Label) + "\n" + box.Render(t.Model.View())
	if t.Err != "" {
		view += "\n" + theme.Invalid.Render("✗ "+t.Err)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value and clears any error.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
	t.Err = ""
}

// InlineView renders the field on a single line, for dense grids.
func (t TextInput) InlineView(labelWidth int) string {
	labelStyle := theme.Label
	if t.Focused() {
		labelStyle = theme.Focused
	}
	if t.Err != "" {
		labelStyle = theme.Invalid
	}
	label := labelStyle.Width(labelWidth).Render(t.Label)

	value := t.Model.View()
	if t.Width > 0 {
		value = lipgloss.NewStyle().Width(t.Width).Render(value)
	}
	return label + value
}
