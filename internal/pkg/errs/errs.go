package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every typed error in
// this package unwraps to exactly one of these, which is what the HTTP
// adapter switches on when mapping errors to status codes.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrNotOwner          = errors.New("not the owner")
	ErrStatusConflict    = errors.New("status conflict")
)

// sanitize flattens multi-line values so error messages stay single-line
// in logs.
func sanitize(value any) string {
	s := fmt.Sprintf("%v", value)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)", e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("object not found: %s", e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("value is invalid: %s", e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its
// allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %s is %s, min value is %v, max value is %v",
		sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("value is required: %s", e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// NotOwnerError indicates that the requesting user does not own the object
// it is trying to access. Authorization failures deliberately unwrap to a
// different sentinel than validation or state errors, so the HTTP adapter
// can report them with a distinct status.
type NotOwnerError struct {
	Resource string
	ID       any
	Cause    error
}

func NewNotOwnerError(resource string, id any) *NotOwnerError {
	return &NotOwnerError{Resource: resource, ID: id}
}

func NewNotOwnerErrorWithCause(resource string, id any, cause error) *NotOwnerError {
	return &NotOwnerError{Resource: resource, ID: id, Cause: cause}
}

func (e *NotOwnerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("not the owner: %s %v (cause: %s)", e.Resource, e.ID, e.Cause)
	}
	return fmt.Sprintf("not the owner: %s %v", e.Resource, e.ID)
}

func (e *NotOwnerError) Unwrap() error {
	return ErrNotOwner
}

// StatusConflictError indicates that an order transition guard failed: the
// requested event is not allowed from the order's current status. The
// current status travels with the error so callers can reconcile.
type StatusConflictError struct {
	Event         string
	CurrentStatus string
	Cause         error
}

func NewStatusConflictError(event, currentStatus string) *StatusConflictError {
	return &StatusConflictError{Event: event, CurrentStatus: currentStatus}
}

func NewStatusConflictErrorWithCause(event, currentStatus string, cause error) *StatusConflictError {
	return &StatusConflictError{Event: event, CurrentStatus: currentStatus, Cause: cause}
}

func (e *StatusConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("status conflict: cannot %s order in status %s (cause: %s)",
			e.Event, e.CurrentStatus, e.Cause)
	}
	return fmt.Sprintf("status conflict: cannot %s order in status %s", e.Event, e.CurrentStatus)
}

func (e *StatusConflictError) Unwrap() error {
	return ErrStatusConflict
}
