// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apperrors defines the error taxonomy shared by every component.

Each error carries a stable machine-readable Code, and validation errors
additionally carry the name of the input field that failed, so callers can
attach the message to the right part of a form:

	err := wizard.Next()
	if apperrors.CodeOf(err) == apperrors.CodeTripDestinationTooShort {
		field := apperrors.FieldOf(err) // "destination"
	}

# Categories

  - Validation: incomplete or invalid user input; recoverable in place and
    never causes a state transition (TRIP_DETAILS_INCOMPLETE,
    TRIP_DESTINATION_TOO_SHORT, ACTIVITY_INCOMPLETE, ACTIVITY_INVALID_HOUR,
    LINK_TITLE_EMPTY, LINK_INVALID_URL, INVITE_INVALID_EMAIL)
  - Duplicate: the invitee is already present (INVITE_DUPLICATE_EMAIL)
  - ConflictInFlight: a mutating operation was rejected because one is
    already pending (CONFLICT_IN_FLIGHT)
  - RemoteFailure: a gateway call failed; the operation state is rolled back
    to its pre-attempt shape (REMOTE_FAILURE)
  - Persistence: the device store failed; distinct from RemoteFailure since
    it affects only local session continuity (PERSISTENCE_FAILURE)
  - Session: no trip is open on this device (NO_ACTIVE_TRIP), or the stored
    handle no longer resolves to a remote trip (STALE_TRIP_HANDLE)

Errors compare by code through errors.Is, and wrap their cause so the
underlying transport or driver error stays reachable via errors.Unwrap.
*/
package apperrors
