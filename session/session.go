// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/danielhkuo/planner/apperrors"
	"github.com/danielhkuo/planner/models"
)

// Store is the device's single-value trip handle store.
type Store interface {
	// Get returns the persisted trip id, or "" when none is saved.
	Get(ctx context.Context) (string, error)
	// Save persists the trip id as the device's current trip.
	Save(ctx context.Context, tripID string) error
}

// TripGateway reads and updates trips on the remote planner API.
type TripGateway interface {
	GetTrip(ctx context.Context, tripID string) (models.Trip, error)
	UpdateTrip(ctx context.Context, tripID string, req models.UpdateTripRequest) error
}

// Session tracks which single trip the device currently has open, and owns
// the trip's own edit flow. The store dependency is injected; there is no
// module-level session state.
type Session struct {
	mu       sync.Mutex
	store    Store
	trips    TripGateway
	updating bool
	logger   *slog.Logger
}

// New creates a session service over the given store and gateway.
func New(store Store, trips TripGateway) *Session {
	return &Session{store: store, trips: trips, logger: slog.Default()}
}

// Open persists tripID as the device's current trip. A store failure is
// surfaced as PERSISTENCE_FAILURE so the caller can avoid navigating to a
// trip that will not survive an app restart.
func (s *Session) Open(ctx context.Context, tripID string) error {
	if err := s.store.Save(ctx, tripID); err != nil {
		s.logger.Error("trip handle save failed", "trip_id", tripID, "error", err)
		return apperrors.Wrap(apperrors.CodePersistenceFailure, "could not save trip on this device", err)
	}

	s.logger.Info("trip opened", "trip_id", tripID)
	return nil
}

// Resume reads the persisted trip handle and fetches the trip it points
// to. It fails with NO_ACTIVE_TRIP when nothing is saved (the caller
// proceeds to the creation flow) and with STALE_TRIP_HANDLE when the saved
// handle is malformed or no longer resolves remotely; clearing a stale
// handle is the caller's decision.
func (s *Session) Resume(ctx context.Context) (models.Trip, error) {
	tripID, err := s.store.Get(ctx)
	if err != nil {
		return models.Trip{}, apperrors.Wrap(apperrors.CodePersistenceFailure, "could not read trip from this device", err)
	}
	if tripID == "" {
		return models.Trip{}, apperrors.New(apperrors.CodeNoActiveTrip, "no trip is open on this device")
	}

	if uuid.Validate(tripID) != nil {
		s.logger.Warn("malformed trip handle on device", "trip_id", tripID)
		return models.Trip{}, apperrors.New(apperrors.CodeStaleTripHandle, "saved trip handle is malformed")
	}

	trip, err := s.trips.GetTrip(ctx, tripID)
	if err != nil {
		s.logger.Warn("saved trip no longer resolves", "trip_id", tripID, "error", err)
		return models.Trip{}, apperrors.Wrap(apperrors.CodeStaleTripHandle, "saved trip could not be fetched", err)
	}
	return trip, nil
}

// UpdateTrip submits a destination and date change for the open trip. The
// guard requires a non-empty destination and a complete date range; updates
// are serialized like every other mutating operation.
func (s *Session) UpdateTrip(ctx context.Context, tripID, destination string, dates models.DateRange) error {
	trimmed := strings.TrimSpace(destination)
	if trimmed == "" {
		return apperrors.NewField(apperrors.CodeTripDetailsIncomplete, "destination", "destination is required")
	}
	if !dates.Complete() {
		return apperrors.NewField(apperrors.CodeTripDetailsIncomplete, "dates", "start and end dates are required")
	}

	s.mu.Lock()
	if s.updating {
		s.mu.Unlock()
		return apperrors.New(apperrors.CodeConflictInFlight, "trip update already in progress")
	}
	s.updating = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.updating = false
		s.mu.Unlock()
	}()

	req := models.UpdateTripRequest{
		Destination: trimmed,
		StartsAt:    dates.Start.Time(),
		EndsAt:      dates.End.Time(),
	}
	if err := s.trips.UpdateTrip(ctx, tripID, req); err != nil {
		s.logger.Error("trip update failed", "trip_id", tripID, "error", err)
		return apperrors.Wrap(apperrors.CodeRemoteFailure, "could not update trip", err)
	}

	s.logger.Info("trip updated", "trip_id", tripID, "destination", trimmed)
	return nil
}
