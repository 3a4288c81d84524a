package predict

import "strings"

// Label is the predicted class of a transaction.
type Label string

const (
	LabelFraud   Label = "FRAUD"
	LabelGenuine Label = "GENUINE"
)

// ParseLabel matches a label case-insensitively.
func ParseLabel(s string) (Label, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(LabelFraud):
		return LabelFraud, true
	case string(LabelGenuine):
		return LabelGenuine, true
	}
	return "", false
}

// RiskLevel is an ordinal risk category; higher values are riskier.
type RiskLevel int

const (
	RiskVeryLow RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
	RiskVeryHigh
)

var riskNames = [...]string{"VERY_LOW", "LOW", "MEDIUM", "HIGH", "VERY_HIGH"}

func (r RiskLevel) String() string {
	if r < RiskVeryLow || r > RiskVeryHigh {
		return "UNKNOWN"
	}
	return riskNames[r]
}

// Display returns the level with spaces, e.g. "VERY HIGH".
func (r RiskLevel) Display() string {
	return strings.ReplaceAll(r.String(), "_", " ")
}

// ParseRiskLevel accepts "VERY LOW", "VERY_LOW", "very-low" and similar.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	for i, name := range riskNames {
		if name == norm {
			return RiskLevel(i), true
		}
	}
	return 0, false
}

// RiskFromProbability buckets a fraud probability (fraction) into a level.
func RiskFromProbability(p float64) RiskLevel {
	switch {
	case p < 0.2:
		return RiskVeryLow
	case p < 0.4:
		return RiskLow
	case p < 0.6:
		return RiskMedium
	case p < 0.8:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

// DefaultRecommendation is used when the service omits one.
const DefaultRecommendation = "Please review transaction manually."

// Result is a successful classification. Probabilities are fractions in
// [0,1] and sum to 1; Confidence is a percentage.
type Result struct {
	Label              Label
	FraudProbability   float64
	GenuineProbability float64
	Confidence         float64
	Risk               RiskLevel
	Recommendation     string
}
