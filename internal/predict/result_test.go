package predict

import "testing"

func TestParseRiskLevel(t *testing.T) {
	tests := []struct {
		in   string
		want RiskLevel
		ok   bool
	}{
		{"VERY LOW", RiskVeryLow, true},
		{"very_low", RiskVeryLow, true},
		{"Low", RiskLow, true},
		{"MEDIUM", RiskMedium, true},
		{" high ", RiskHigh, true},
		{"very-high", RiskVeryHigh, true},
		{"UNKNOWN", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseRiskLevel(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseRiskLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRiskLevelOrdering(t *testing.T) {
	levels := []RiskLevel{RiskVeryLow, RiskLow, RiskMedium, RiskHigh, RiskVeryHigh}
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Errorf("%v should be below %v", levels[i-1], levels[i])
		}
	}
	if RiskVeryHigh.Display() != "VERY HIGH" {
		t.Errorf("Display = %q", RiskVeryHigh.Display())
	}
}

func TestRiskFromProbability(t *testing.T) {
	tests := []struct {
		p    float64
		want RiskLevel
	}{
		{0, RiskVeryLow},
		{0.199, RiskVeryLow},
		{0.2, RiskLow},
		{0.5, RiskMedium},
		{0.79, RiskHigh},
		{0.8, RiskVeryHigh},
		{1, RiskVeryHigh},
	}
	for _, tt := range tests {
		if got := RiskFromProbability(tt.p); got != tt.want {
			t.Errorf("RiskFromProbability(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestParseLabel(t *testing.T) {
	if l, ok := ParseLabel("Fraud"); !ok || l != LabelFraud {
		t.Errorf("ParseLabel(Fraud) = %v, %v", l, ok)
	}
	if l, ok := ParseLabel("GENUINE"); !ok || l != LabelGenuine {
		t.Errorf("ParseLabel(GENUINE) = %v, %v", l, ok)
	}
	if _, ok := ParseLabel("maybe"); ok {
		t.Error("expected unknown label to fail")
	}
}
