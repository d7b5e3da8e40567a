// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package board manages the scheduled activities of one trip.

# Loading

Load fetches the trip's activities from the remote gateway and rebuilds the
derived day groups: sorted ascending by day, each day sorted ascending by
time, with a localized weekday name per group. A failed load surfaces the
error and leaves previously loaded groups untouched; there is never a
partial overwrite.

# Creating

Input for a new activity is staged on the board (SetTitle, SetDate,
SetHour) and submitted with CreateActivity, which requires all three
fields, computes occursAt as the selected date plus the hour, and
resynchronizes with a full reload. Bounding the date to the trip window is
the calendar presentation's job; the board does not re-validate it.

# Check and delete

ToggleCheck calls the remote check endpoint and flags the board as needing
a refresh instead of flipping the done flag locally, so client state can
never diverge from server truth. Delete removes remotely and reloads.
Mutations are serialized: a second mutating call while one is in flight
fails with CONFLICT_IN_FLIGHT.

# Swipe rows

Each displayed activity gets a Row, a small state machine over the
swipe-to-delete gesture:

	resting -> dragging -> committing-delete (release past 30% of width)
	                    -> resting           (release short of it)

Rows for past or completed activities ignore drags. After the remote
delete completes, Settle moves the committed row to its settled state.
*/
package board
