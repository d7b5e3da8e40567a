// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/planner/apperrors"
	"github.com/danielhkuo/planner/models"
	"github.com/danielhkuo/planner/testutil"
)

type fakeOpener struct {
	tripID string
	err    error
	calls  int
}

func (o *fakeOpener) Open(ctx context.Context, tripID string) error {
	o.calls++
	if o.err != nil {
		return o.err
	}
	o.tripID = tripID
	return nil
}

func newTestWizard(gw *testutil.FakeGateway, opener *fakeOpener) *Wizard {
	return New(gw, opener, Owner{Name: "Test Owner", Email: "owner@example.com"})
}

func fillDetails(t *testing.T, w *Wizard) {
	t.Helper()

	w.SetDestination("Florianópolis")
	w.SelectDay(testutil.MustDate(t, "2025-11-21"))
	w.SelectDay(testutil.MustDate(t, "2025-11-23"))
}

func TestNextGuard(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		withDates   bool
		wantCode    apperrors.Code
		wantField   string
	}{
		{
			name:        "empty destination",
			destination: "   ",
			withDates:   true,
			wantCode:    apperrors.CodeTripDetailsIncomplete,
			wantField:   "destination",
		},
		{
			name:        "missing dates",
			destination: "Florianópolis",
			withDates:   false,
			wantCode:    apperrors.CodeTripDetailsIncomplete,
			wantField:   "dates",
		},
		{
			name:        "destination shorter than four characters",
			destination: "NYC",
			withDates:   true,
			wantCode:    apperrors.CodeTripDestinationTooShort,
			wantField:   "destination",
		},
		{
			name:        "trimmed length counts",
			destination: "  NYC  ",
			withDates:   true,
			wantCode:    apperrors.CodeTripDestinationTooShort,
			wantField:   "destination",
		},
		{
			name:        "valid details",
			destination: "Florianópolis",
			withDates:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWizard(&testutil.FakeGateway{}, &fakeOpener{})

			w.SetDestination(tt.destination)
			if tt.withDates {
				w.SelectDay(testutil.MustDate(t, "2025-11-21"))
				w.SelectDay(testutil.MustDate(t, "2025-11-23"))
			}

			err := w.Next()

			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Next returned %v, want nil", err)
				}
				if w.Stage() != StageInvites {
					t.Errorf("stage = %v, want invites", w.Stage())
				}
				return
			}

			if apperrors.CodeOf(err) != tt.wantCode {
				t.Errorf("error code = %v, want %v", apperrors.CodeOf(err), tt.wantCode)
			}
			if apperrors.FieldOf(err) != tt.wantField {
				t.Errorf("error field = %q, want %q", apperrors.FieldOf(err), tt.wantField)
			}
			if w.Stage() != StageDetails {
				t.Errorf("guard violation changed stage to %v", w.Stage())
			}
		})
	}
}

func TestEditDetailsPreservesData(t *testing.T) {
	w := newTestWizard(&testutil.FakeGateway{}, &fakeOpener{})
	fillDetails(t, w)

	if err := w.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if err := w.Guests().Add("friend@example.com"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	w.EditDetails()

	if w.Stage() != StageDetails {
		t.Fatalf("stage = %v, want details", w.Stage())
	}
	if w.Destination() != "Florianópolis" {
		t.Errorf("destination lost: %q", w.Destination())
	}
	if !w.Dates().Complete() {
		t.Error("dates lost on edit")
	}
	if w.Guests().Len() != 1 {
		t.Errorf("guests lost on edit: %d", w.Guests().Len())
	}

	// Forward again without re-entering anything.
	if err := w.Next(); err != nil {
		t.Fatalf("Next after edit failed: %v", err)
	}
}

func TestConfirm(t *testing.T) {
	gw := &testutil.FakeGateway{
		CreateTripFunc: func(ctx context.Context, req models.CreateTripRequest) (string, error) {
			if req.Destination != "Florianópolis" {
				t.Errorf("request destination = %q", req.Destination)
			}
			if len(req.EmailsToInvite) != 1 || req.EmailsToInvite[0] != "friend@example.com" {
				t.Errorf("request invitees = %v", req.EmailsToInvite)
			}
			if req.OwnerName != "Test Owner" || req.OwnerEmail != "owner@example.com" {
				t.Errorf("request owner = %q <%s>", req.OwnerName, req.OwnerEmail)
			}
			if !req.StartsAt.Before(req.EndsAt) {
				t.Errorf("request dates inverted: %v .. %v", req.StartsAt, req.EndsAt)
			}
			return "trip-1", nil
		},
	}
	opener := &fakeOpener{}
	w := newTestWizard(gw, opener)

	fillDetails(t, w)
	if err := w.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if err := w.Guests().Add("friend@example.com"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	tripID, err := w.Confirm(context.Background())
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if tripID != "trip-1" {
		t.Errorf("tripID = %q, want trip-1", tripID)
	}
	if w.Stage() != StageConfirmed {
		t.Errorf("stage = %v, want confirmed", w.Stage())
	}
	if opener.tripID != "trip-1" {
		t.Errorf("session holds %q, want trip-1", opener.tripID)
	}
}

func TestConfirmRequiresInvitesStage(t *testing.T) {
	w := newTestWizard(&testutil.FakeGateway{}, &fakeOpener{})
	fillDetails(t, w)

	if _, err := w.Confirm(context.Background()); err == nil {
		t.Fatal("Confirm from details stage should fail")
	}
}

func TestConfirmRemoteFailureKeepsState(t *testing.T) {
	gw := &testutil.FakeGateway{
		CreateTripFunc: func(ctx context.Context, req models.CreateTripRequest) (string, error) {
			return "", errors.New("boom")
		},
	}
	w := newTestWizard(gw, &fakeOpener{})

	fillDetails(t, w)
	if err := w.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	_, err := w.Confirm(context.Background())
	if apperrors.CodeOf(err) != apperrors.CodeRemoteFailure {
		t.Fatalf("error code = %v, want REMOTE_FAILURE", apperrors.CodeOf(err))
	}

	// Wizard stays at invites with data intact so the user may retry.
	if w.Stage() != StageInvites {
		t.Errorf("stage = %v, want invites", w.Stage())
	}
	if w.Destination() != "Florianópolis" {
		t.Errorf("destination lost after failure: %q", w.Destination())
	}

	// A retry is allowed once the first attempt resolved.
	gw.CreateTripFunc = func(ctx context.Context, req models.CreateTripRequest) (string, error) {
		return "trip-2", nil
	}
	if _, err := w.Confirm(context.Background()); err != nil {
		t.Errorf("retry failed: %v", err)
	}
}

func TestConfirmConflictInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	gw := &testutil.FakeGateway{
		CreateTripFunc: func(ctx context.Context, req models.CreateTripRequest) (string, error) {
			close(entered)
			<-release
			return "trip-1", nil
		},
	}
	w := newTestWizard(gw, &fakeOpener{})

	fillDetails(t, w)
	if err := w.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := w.Confirm(context.Background())
		done <- err
	}()

	<-entered

	// Second confirm while the first is in flight: rejected, not queued.
	_, err := w.Confirm(context.Background())
	if apperrors.CodeOf(err) != apperrors.CodeConflictInFlight {
		t.Errorf("error code = %v, want CONFLICT_IN_FLIGHT", apperrors.CodeOf(err))
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}

	if got := gw.Calls("CreateTrip"); got != 1 {
		t.Errorf("CreateTrip called %d times, want 1", got)
	}
}

func TestConfirmSurfacesPersistenceFailure(t *testing.T) {
	gw := &testutil.FakeGateway{
		CreateTripFunc: func(ctx context.Context, req models.CreateTripRequest) (string, error) {
			return "trip-1", nil
		},
	}
	opener := &fakeOpener{err: apperrors.New(apperrors.CodePersistenceFailure, "disk full")}
	w := newTestWizard(gw, opener)

	fillDetails(t, w)
	if err := w.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	tripID, err := w.Confirm(context.Background())
	if apperrors.CodeOf(err) != apperrors.CodePersistenceFailure {
		t.Fatalf("error code = %v, want PERSISTENCE_FAILURE", apperrors.CodeOf(err))
	}

	// The trip exists remotely; the caller still gets its id.
	if tripID != "trip-1" {
		t.Errorf("tripID = %q, want trip-1", tripID)
	}
}
