package arbitrary

import (
	"fmt"
	"reflect"
)

// MissingCapabilityError reports a type with no Arbitrary instance bound in
// the consulted Registry.
type MissingCapabilityError struct {
	Type reflect.Type
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("arbitrary: no capability registered for type %s", e.Type)
}

// MalformedCapabilityError reports a candidate implementation whose
// operations do not match the required generate/shrink/specialCases shape.
// It names the offending type and operation so the defect is attributable
// before any value is ever generated.
type MalformedCapabilityError struct {
	Type   reflect.Type
	Op     string
	Reason string
}

func (e *MalformedCapabilityError) Error() string {
	return fmt.Sprintf("arbitrary: malformed capability for type %s: %s: %s", e.Type, e.Op, e.Reason)
}
