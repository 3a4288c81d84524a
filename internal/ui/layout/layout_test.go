package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{200, 60, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader_Status(t *testing.T) {
	tests := []struct {
		name   string
		status ServiceStatus
		want   string
	}{
		{"unknown", ServiceStatus{}, "Checking API"},
		{"healthy", ServiceStatus{Known: true, Healthy: true, Text: "API Connected"}, "API Connected"},
		{"offline", ServiceStatus{Known: true, Text: "API Offline"}, "API Offline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderHeader("Analyze", tt.status, 100)
			if !strings.Contains(out, tt.want) {
				t.Errorf("header missing %q:\n%s", tt.want, out)
			}
			if !strings.Contains(out, "FraudLens") {
				t.Error("header missing app name")
			}
		})
	}
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "Enter", Description: "Analyze"}}, 80)
	if !strings.Contains(out, "Enter") || !strings.Contains(out, "Analyze") {
		t.Errorf("footer missing hint:\n%s", out)
	}
}
