// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session tracks the device's single current trip.

At most one trip handle is persisted per device, through an injected Store.
Open saves the handle after a trip is created or looked up; Resume reads it
at startup to decide initial routing:

	trip, err := sess.Resume(ctx)
	switch apperrors.CodeOf(err) {
	case apperrors.CodeNoActiveTrip:
		// proceed to the creation flow
	case apperrors.CodeStaleTripHandle:
		// handle points at a trip that is gone; caller decides whether to clear it
	case apperrors.CodePersistenceFailure:
		// the device store itself failed
	}

The session also owns the open trip's edit flow: UpdateTrip submits a new
destination and date range, guarded the same way as the trip form and
serialized against concurrent updates.
*/
package session
