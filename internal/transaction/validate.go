package transaction

import "fmt"

// ValidationError reports a field that blocks submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Validate accepts a candidate whose Time and Amount are present and
// non-negative, and returns the complete Input.
func Validate(c Candidate) (Input, error) {
	if err := checkRequired("Time", c.Time); err != nil {
		return Input{}, err
	}
	if err := checkRequired("Amount", c.Amount); err != nil {
		return Input{}, err
	}
	return Input{
		Time:     *c.Time,
		Amount:   *c.Amount,
		Features: c.Features,
	}, nil
}

func checkRequired(field string, v *float64) error {
	if v == nil {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	if *v < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}
