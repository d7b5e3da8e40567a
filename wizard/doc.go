// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wizard implements the multi-step trip-creation state machine.

# Stages

	details -> invites -> confirmed (terminal)

The only backward transition is EditDetails (invites -> details), which
preserves every previously entered value. Advancing past details requires a
destination of at least four characters (after trimming) and a fully
selected date range; guard violations report field-identified validation
errors without changing the stage.

# Confirm

Confirm is the commit step. It submits destination, dates, and the invite
list to the Trip gateway, persists the returned id through the session
opener, and moves to the terminal stage:

	w := wizard.New(gateway, session, owner)
	w.SetDestination("Florianópolis")
	w.SelectDay(start)
	w.SelectDay(end)
	if err := w.Next(); err != nil { ... }
	w.Guests().Add("friend@example.com")
	tripID, err := w.Confirm(ctx)

A failed submit leaves the wizard at invites with its data intact; retrying
is always a new user action. At most one submit may be in flight; a second
Confirm fails with CONFLICT_IN_FLIGHT without touching the gateway.
*/
package wizard
