package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestTextInputNumericOnly(t *testing.T) {
	ti := NewTextInput("Amount", "0.00", true, 12)
	ti.Focus()

	for _, r := range "-1a2.5x" {
		ti, _ = ti.Update(keyPress(r))
	}

	if got := ti.Value(); got != "-12.5" {
		t.Errorf("Value() = %q, want %q", got, "-12.5")
	}
}

func TestTextInputIgnoresKeysWhenBlurred(t *testing.T) {
	ti := NewTextInput("Time", "0", true, 12)

	ti, _ = ti.Update(keyPress('7'))

	if got := ti.Value(); got != "" {
		t.Errorf("blurred input accepted text: %q", got)
	}
}

func TestTextInputErrorShown(t *testing.T) {
	ti := NewTextInput("Amount", "0.00", true, 12)
	ti.Err = "Amount is required"

	if !strings.Contains(ti.View(), "Amount is required") {
		t.Error("expected inline error in view")
	}

	ti.SetValue("10")
	if ti.Err != "" {
		t.Error("SetValue should clear the error")
	}
}

func TestMenuNavigationAndSelect(t *testing.T) {
	var picked string
	items := []MenuItem{
		{Label: "one", Action: func() tea.Cmd { picked = "one"; return nil }},
		{Label: "two", Action: func() tea.Cmd { picked = "two"; return nil }},
		{Label: "three", Disabled: true},
	}
	m := NewMenu(items)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 1 {
		t.Fatalf("expected selection 1, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 1 {
		t.Errorf("disabled item should be skipped, got %d", m.Selected)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if picked != "two" {
		t.Errorf("expected 'two' activated, got %q", picked)
	}
}

func TestMenuNumberShortcut(t *testing.T) {
	var picked string
	m := NewMenu([]MenuItem{
		{Label: "one", Action: func() tea.Cmd { picked = "one"; return nil }},
		{Label: "two", Action: func() tea.Cmd { picked = "two"; return nil }},
	})

	m.Update(keyPress('2'))

	if picked != "two" {
		t.Errorf("expected '2' to activate second item, got %q", picked)
	}
}

func TestProgressBarFilled(t *testing.T) {
	tests := []struct {
		fraction float64
		want     int
	}{
		{0, 0},
		{0.5, 10},
		{0.91, 18},
		{1, 20},
		{1.5, 20},
		{-0.2, 0},
	}
	for _, tt := range tests {
		p := ProgressBar{Fraction: tt.fraction}
		if got := p.Filled(20); got != tt.want {
			t.Errorf("Filled(20) with %v = %d, want %d", tt.fraction, got, tt.want)
		}
	}
}
