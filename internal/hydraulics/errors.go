package hydraulics

import "fmt"

// ConfigurationError reports a missing or malformed profile field.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// InvalidGeometryError reports a physical dimension outside its valid range.
type InvalidGeometryError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s = %g (%s)", e.Field, e.Value, e.Reason)
}

// InvalidParameterError reports an operation argument that would make the
// calculation undefined, such as a zero contraction ratio or iteration count.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter: %s = %g (%s)", e.Param, e.Value, e.Reason)
}

func mustBePositive(field string, v float64) error {
	if !(v > 0) {
		return &InvalidGeometryError{Field: field, Value: v, Reason: "must be positive"}
	}
	return nil
}
