// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

import (
	"math"

	"github.com/danielhkuo/planner/models"
)

// Row states for the swipe-to-delete gesture
const (
	RowResting RowState = iota
	RowDragging
	RowCommittingDelete
	RowSettled
)

// RowState is the position of an activity row in its gesture lifecycle.
type RowState int

func (s RowState) String() string {
	switch s {
	case RowResting:
		return "resting"
	case RowDragging:
		return "dragging"
	case RowCommittingDelete:
		return "committing-delete"
	case RowSettled:
		return "settled"
	}
	return "unknown"
}

// DeleteThreshold is the horizontal drag distance, as a fraction of the
// viewport width, past which a release commits the delete.
const DeleteThreshold = 0.30

// Row tracks the swipe gesture of a single displayed activity. Drag offsets
// are purely local state until Release resolves them; past or completed
// activities are not swipeable, so their rows ignore drags entirely.
type Row struct {
	activity  models.Activity
	swipeable bool
	state     RowState
	offset    float64
}

// NewRow creates a gesture row for an activity. The delete affordance is
// disabled when the activity is past or already done.
func (b *Board) NewRow(a models.Activity) *Row {
	return &Row{
		activity:  a,
		swipeable: !b.IsPast(a) && !a.Done,
	}
}

// Activity returns the activity this row displays.
func (r *Row) Activity() models.Activity {
	return r.activity
}

// Swipeable reports whether the row responds to drags.
func (r *Row) Swipeable() bool {
	return r.swipeable
}

// State returns the row's current gesture state.
func (r *Row) State() RowState {
	return r.state
}

// Offset returns the current drag offset as a fraction of viewport width.
func (r *Row) Offset() float64 {
	return r.offset
}

// Drag records a horizontal drag sample. Ignored for non-swipeable rows and
// for rows past the commit decision.
func (r *Row) Drag(offset float64) {
	if !r.swipeable {
		return
	}
	if r.state != RowResting && r.state != RowDragging {
		return
	}

	r.state = RowDragging
	r.offset = offset
}

// Release resolves the gesture. A release while still past the threshold
// commits the delete; anything short of it animates the row back to rest.
// Committing-delete is terminal for the row instance.
func (r *Row) Release() RowState {
	if r.state != RowDragging {
		return r.state
	}

	if math.Abs(r.offset) >= DeleteThreshold {
		r.state = RowCommittingDelete
		return r.state
	}

	r.state = RowResting
	r.offset = 0
	return r.state
}

// Settle marks the committed row as settled once the remote delete has
// completed and the row leaves the displayed collection.
func (r *Row) Settle() {
	if r.state == RowCommittingDelete {
		r.state = RowSettled
	}
}
