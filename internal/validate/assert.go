package validate

import (
	"fmt"
	"strings"
)

// ValidationError is a single-value assertion failure. Unlike Result it is
// returned as an error, for callers that want a hard boundary instead of an
// accumulated report.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s (got %v)", e.Field, e.Reason, e.Value)
}

// AssertDefined fails when v is nil.
func AssertDefined(field string, v any) error {
	if v == nil {
		return &ValidationError{Field: field, Value: v, Reason: "value is required"}
	}
	return nil
}

// AssertNumberInRange fails when v is not a finite number within [min, max].
func AssertNumberInRange(field string, v any, min, max float64) error {
	n, ok := asNumber(v)
	if !ok || !isFinite(n) {
		return &ValidationError{Field: field, Value: v, Reason: "value is not a finite number"}
	}
	if n < min || n > max {
		return &ValidationError{
			Field:  field,
			Value:  v,
			Reason: fmt.Sprintf("value is outside the range [%v, %v]", min, max),
		}
	}
	return nil
}

// AssertNonEmptyString fails when v is not a string or is blank.
func AssertNonEmptyString(field string, v any) error {
	s, ok := v.(string)
	if !ok {
		return &ValidationError{Field: field, Value: v, Reason: "value is not a string"}
	}
	if strings.TrimSpace(s) == "" {
		return &ValidationError{Field: field, Value: v, Reason: "value must not be empty"}
	}
	return nil
}
