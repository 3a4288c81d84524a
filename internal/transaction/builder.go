package transaction

import (
	"math"
	"strconv"
	"strings"
)

// Raw holds form values exactly as the user typed them.
type Raw struct {
	Time     string
	Amount   string
	Features [FeatureCount]string
}

// Candidate is the builder's output. Time and Amount stay nil when missing
// or unparseable so the validator can reject them; features never do.
type Candidate struct {
	Time     *float64
	Amount   *float64
	Features [FeatureCount]float64
}

// Build coerces raw form values into a Candidate. When override is non-nil
// the candidate is taken from it instead of the raw values.
func Build(raw Raw, override *Input) Candidate {
	if override != nil {
		return FromInput(*override)
	}

	c := Candidate{
		Time:   parseOptional(raw.Time),
		Amount: parseOptional(raw.Amount),
	}
	for i, s := range raw.Features {
		if v := parseOptional(s); v != nil {
			c.Features[i] = *v
		}
	}
	return c
}

// FromInput wraps a complete Input as a Candidate.
func FromInput(in Input) Candidate {
	t, a := in.Time, in.Amount
	return Candidate{Time: &t, Amount: &a, Features: in.Features}
}

// RawFromInput renders an Input into form strings. Zero feature slots are
// left blank.
func RawFromInput(in Input) Raw {
	r := Raw{
		Time:   formatNumber(in.Time),
		Amount: formatNumber(in.Amount),
	}
	for i, v := range in.Features {
		if v != 0 {
			r.Features[i] = formatNumber(v)
		}
	}
	return r
}

func parseOptional(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
