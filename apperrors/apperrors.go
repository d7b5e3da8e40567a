// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apperrors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Trip form errors
	CodeTripDetailsIncomplete   Code = "TRIP_DETAILS_INCOMPLETE"
	CodeTripDestinationTooShort Code = "TRIP_DESTINATION_TOO_SHORT"

	// Invite errors
	CodeInviteInvalidEmail   Code = "INVITE_INVALID_EMAIL"
	CodeInviteDuplicateEmail Code = "INVITE_DUPLICATE_EMAIL"

	// Activity errors
	CodeActivityIncomplete  Code = "ACTIVITY_INCOMPLETE"
	CodeActivityInvalidHour Code = "ACTIVITY_INVALID_HOUR"

	// Link errors
	CodeLinkTitleEmpty Code = "LINK_TITLE_EMPTY"
	CodeLinkInvalidURL Code = "LINK_INVALID_URL"

	// Operation errors
	CodeConflictInFlight Code = "CONFLICT_IN_FLIGHT"
	CodeRemoteFailure    Code = "REMOTE_FAILURE"

	// Session errors
	CodePersistenceFailure Code = "PERSISTENCE_FAILURE"
	CodeNoActiveTrip       Code = "NO_ACTIVE_TRIP"
	CodeStaleTripHandle    Code = "STALE_TRIP_HANDLE"
)

// Error is an application error with a stable code, an optional field name
// identifying which input failed validation, and an optional wrapped cause.
type Error struct {
	Code    Code
	Field   string
	Message string
	cause   error
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewField creates a validation Error tied to a specific input field.
func NewField(code Code, field, message string) *Error {
	return &Error{Code: code, Field: field, Message: message}
}

// Wrap creates an Error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, apperrors.New(code, "")) matches any error carrying code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// CodeOf extracts the code from err, or CodeUnknown if err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// FieldOf extracts the field name from err, or "" if err carries none.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}
