package transaction

import (
	"encoding/json"
	"fmt"
)

// FeatureCount is the number of auxiliary feature slots (F1..F28).
const FeatureCount = 28

// FieldCount is the total number of numeric fields in an encoded Input.
const FieldCount = FeatureCount + 2

// DefaultFeaturePrefix is the key prefix used for feature slots on the wire.
const DefaultFeaturePrefix = "F"

// Input is a fully populated feature vector ready for submission.
type Input struct {
	Time     float64
	Amount   float64
	Features [FeatureCount]float64
}

// FeatureName returns the wire name of the feature at index i (0-based).
func FeatureName(prefix string, i int) string {
	return fmt.Sprintf("%s%d", prefix, i+1)
}

// Fields returns the input as a flat map of exactly FieldCount keys.
func (in Input) Fields(prefix string) map[string]float64 {
	m := make(map[string]float64, FieldCount)
	m["Time"] = in.Time
	m["Amount"] = in.Amount
	for i, v := range in.Features {
		m[FeatureName(prefix, i)] = v
	}
	return m
}

// MarshalJSON encodes the input with the default feature prefix.
func (in Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(in.Fields(DefaultFeaturePrefix))
}
