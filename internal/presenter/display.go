package presenter

import (
	"math"
	"strconv"

	"github.com/abhisek/fraudlens/internal/predict"
)

// Badge is the presentation class for a risk level.
type Badge struct {
	Class string
	Text  string
}

// Display holds values derived from a Result for rendering. It is rebuilt
// on every render. Meter is the fraud probability clamped to [0,1].
type Display struct {
	IsFraud        bool
	Icon           string
	Headline       string
	Action         string
	FraudPercent   string
	GenuinePercent string
	Confidence     string
	Meter          float64
	Risk           predict.RiskLevel
	Badge          Badge
	Recommendation string
}

// Derive computes the display values for r.
func Derive(r predict.Result) Display {
	d := Display{
		IsFraud:        r.Label == predict.LabelFraud,
		FraudPercent:   Percent(r.FraudProbability),
		GenuinePercent: Percent(r.GenuineProbability),
		Confidence:     formatPercentValue(r.Confidence) + "%",
		Meter:          math.Max(0, math.Min(1, r.FraudProbability)),
		Risk:           r.Risk,
		Badge:          BadgeFor(r.Risk),
		Recommendation: r.Recommendation,
	}
	if d.IsFraud {
		d.Icon = "🚨"
		d.Headline = "Fraud Detected"
		d.Action = "Block Transaction"
	} else {
		d.Icon = "✅"
		d.Headline = "Genuine Transaction"
		d.Action = "Approve Transaction"
	}
	return d
}

// Percent formats a fraction as a percentage with at most one decimal,
// e.g. 0.91 -> "91%", 0.9766 -> "97.7%".
func Percent(fraction float64) string {
	return formatPercentValue(fraction*100) + "%"
}

func formatPercentValue(v float64) string {
	rounded := math.Round(v*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// BadgeFor maps a risk level to its badge.
func BadgeFor(r predict.RiskLevel) Badge {
	switch r {
	case predict.RiskVeryLow:
		return Badge{Class: "very-low", Text: "VERY LOW"}
	case predict.RiskLow:
		return Badge{Class: "low", Text: "LOW"}
	case predict.RiskMedium:
		return Badge{Class: "medium", Text: "MEDIUM"}
	case predict.RiskHigh:
		return Badge{Class: "high", Text: "HIGH"}
	case predict.RiskVeryHigh:
		return Badge{Class: "very-high", Text: "VERY HIGH"}
	}
	return Badge{Class: "unknown", Text: "UNKNOWN"}
}
