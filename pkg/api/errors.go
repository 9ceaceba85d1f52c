package api

import "errors"

// validationError reports that a builder was asked to freeze an action with
// missing or invalid required configuration. The offending field is recorded
// so callers can point users at the exact input to fix.
type validationError struct {
	Field  string
	Reason string
}

func (e *validationError) Error() string {
	return "invalid action configuration: field " + e.Field + ": " + e.Reason
}

// NewValidationError returns an error reporting that the named action
// configuration field is missing or invalid.
func NewValidationError(field, reason string) error {
	return &validationError{Field: field, Reason: reason}
}

// IsValidationError returns (fieldName, true) if err reports invalid action
// configuration detected at build time.
func IsValidationError(err error) (string, bool) {
	var v *validationError
	if errors.As(err, &v) {
		return v.Field, true
	}
	return "", false
}

// stateError reports a violated structural invariant: an error handler node
// with edges, a duplicate node name, a consumed builder being reused, or a
// dangling transition target. These are fatal to the construction or
// translation in progress and are never downgraded.
type stateError struct {
	Msg string
}

func (e *stateError) Error() string {
	return e.Msg
}

// NewStateError returns an error reporting a violated structural invariant.
func NewStateError(msg string) error {
	return &stateError{Msg: msg}
}

// IsStateError reports whether err indicates a violated structural invariant.
func IsStateError(err error) bool {
	var s *stateError
	return errors.As(err, &s)
}

// mappingError reports that a field on a source action payload could not be
// copied to the target schema shape.
type mappingError struct {
	Kind  string
	Field string
}

func (e *mappingError) Error() string {
	if e.Field == "" {
		return "cannot map action kind " + e.Kind + ": no mapping registered"
	}
	return "cannot map action kind " + e.Kind + ": field " + e.Field
}

// NewMappingError returns an error reporting that the named field of an
// action of the given kind has no counterpart in the target shape.
func NewMappingError(kind, field string) error {
	return &mappingError{Kind: kind, Field: field}
}

// IsMappingError returns (fieldName, true) if err reports a failed field copy
// during translation.
func IsMappingError(err error) (string, bool) {
	var m *mappingError
	if errors.As(err, &m) {
		return m.Field, true
	}
	return "", false
}
