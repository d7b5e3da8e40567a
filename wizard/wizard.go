// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/danielhkuo/planner/apperrors"
	"github.com/danielhkuo/planner/calendar"
	"github.com/danielhkuo/planner/invites"
	"github.com/danielhkuo/planner/models"
)

// Trip creation stages
const (
	StageDetails Stage = iota
	StageInvites
	StageConfirmed
)

// Stage is the wizard's position in the create-trip flow.
type Stage int

func (s Stage) String() string {
	switch s {
	case StageDetails:
		return "details"
	case StageInvites:
		return "invites"
	case StageConfirmed:
		return "confirmed"
	}
	return "unknown"
}

// minDestinationLen is the shortest destination accepted by the details guard.
const minDestinationLen = 4

// TripGateway creates trips on the remote planner API.
type TripGateway interface {
	CreateTrip(ctx context.Context, req models.CreateTripRequest) (string, error)
}

// SessionOpener persists the created trip as the device's current trip.
type SessionOpener interface {
	Open(ctx context.Context, tripID string) error
}

// Owner identifies the trip creator sent with the create payload.
type Owner struct {
	Name  string
	Email string
}

// Wizard is the finite-state controller for the create-trip flow:
// details -> invites -> confirmed, with a backward edit transition from
// invites to details that preserves all entered data.
type Wizard struct {
	mu          sync.Mutex
	stage       Stage
	destination string
	dates       models.DateRange
	guests      *invites.Set
	submitting  bool

	trips   TripGateway
	session SessionOpener
	owner   Owner
	logger  *slog.Logger
}

// New creates a wizard at the details stage.
func New(trips TripGateway, session SessionOpener, owner Owner) *Wizard {
	return &Wizard{
		stage:   StageDetails,
		guests:  invites.NewSet(nil),
		trips:   trips,
		session: session,
		owner:   owner,
		logger:  slog.Default(),
	}
}

// Stage returns the current wizard stage.
func (w *Wizard) Stage() Stage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stage
}

// SetDestination stages the destination input.
func (w *Wizard) SetDestination(destination string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.destination = destination
}

// Destination returns the staged destination input.
func (w *Wizard) Destination() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destination
}

// SelectDay folds one calendar pick into the staged date range.
func (w *Wizard) SelectDay(day models.Date) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dates = calendar.ApplySelection(w.dates, day)
}

// Dates returns the staged date range.
func (w *Wizard) Dates() models.DateRange {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dates
}

// Guests returns the invite set for the trip being created.
func (w *Wizard) Guests() *invites.Set {
	return w.guests
}

// Next advances from details to invites. The guard requires a trimmed
// destination of at least four characters and a complete date range; a
// violation reports a field-identified validation error and leaves the
// stage unchanged. Calling Next from the invites stage is a no-op.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkDetails(); err != nil {
		return err
	}

	if w.stage == StageDetails {
		w.stage = StageInvites
	}
	return nil
}

// checkDetails runs the details-stage guard. Callers must hold w.mu.
func (w *Wizard) checkDetails() error {
	trimmed := strings.TrimSpace(w.destination)

	if trimmed == "" {
		return apperrors.NewField(apperrors.CodeTripDetailsIncomplete, "destination", "destination is required")
	}
	if !w.dates.Complete() {
		return apperrors.NewField(apperrors.CodeTripDetailsIncomplete, "dates", "start and end dates are required")
	}
	if len([]rune(trimmed)) < minDestinationLen {
		return apperrors.NewField(apperrors.CodeTripDestinationTooShort, "destination", "destination must have at least 4 characters")
	}
	return nil
}

// EditDetails moves back from invites to details. All previously entered
// destination, date, and guest data is preserved.
func (w *Wizard) EditDetails() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stage == StageInvites {
		w.stage = StageDetails
	}
}

// Confirm submits the trip to the remote gateway. On success the trip id is
// persisted as the device's current trip and the wizard reaches its
// terminal stage. On a remote failure the wizard stays at invites with all
// entered data intact so the user may retry; nothing retries automatically.
//
// Only one submit may be outstanding: a second Confirm while one is in
// flight fails with CONFLICT_IN_FLIGHT and issues no remote call.
func (w *Wizard) Confirm(ctx context.Context) (string, error) {
	w.mu.Lock()
	if w.stage != StageInvites {
		w.mu.Unlock()
		return "", apperrors.New(apperrors.CodeTripDetailsIncomplete, "trip details not confirmed yet")
	}
	if w.submitting {
		w.mu.Unlock()
		return "", apperrors.New(apperrors.CodeConflictInFlight, "trip creation already in progress")
	}
	w.submitting = true

	req := models.CreateTripRequest{
		Destination:    strings.TrimSpace(w.destination),
		StartsAt:       w.dates.Start.Time(),
		EndsAt:         w.dates.End.Time(),
		EmailsToInvite: w.guests.Emails(),
		OwnerName:      w.owner.Name,
		OwnerEmail:     w.owner.Email,
	}
	w.mu.Unlock()

	tripID, err := w.trips.CreateTrip(ctx, req)

	w.mu.Lock()
	w.submitting = false
	if err != nil {
		w.mu.Unlock()
		w.logger.Error("trip creation failed", "destination", req.Destination, "error", err)
		return "", apperrors.Wrap(apperrors.CodeRemoteFailure, "could not create trip", err)
	}
	w.stage = StageConfirmed
	w.mu.Unlock()

	w.logger.Info("trip created", "trip_id", tripID, "destination", req.Destination, "guests", len(req.EmailsToInvite))

	// The trip exists remotely even if the device store write fails; the
	// caller gets the id either way and decides whether to navigate.
	if err := w.session.Open(ctx, tripID); err != nil {
		return tripID, err
	}
	return tripID, nil
}
