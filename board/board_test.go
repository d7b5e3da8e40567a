// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/danielhkuo/planner/apperrors"
	"github.com/danielhkuo/planner/models"
	"github.com/danielhkuo/planner/testutil"
)

const tripID = "trip-1"

// fixedNow keeps isPast checks deterministic: mid-trip, 2025-07-22 12:00 UTC.
var fixedNow = time.Date(2025, 7, 22, 12, 0, 0, 0, time.UTC)

func newTestBoard(gw *testutil.FakeGateway) *Board {
	return New(gw, WithClock(func() time.Time { return fixedNow }), WithLocale(language.BrazilianPortuguese))
}

func listFixture(t *testing.T) []models.DayActivities {
	t.Helper()

	// Days out of order and times out of order inside a day; Load must sort.
	return []models.DayActivities{
		testutil.Day(t, "2025-07-23",
			testutil.Act("a3", "Museu", time.Date(2025, 7, 23, 14, 0, 0, 0, time.UTC), false),
		),
		testutil.Day(t, "2025-07-21",
			testutil.Act("a2", "Jantar", time.Date(2025, 7, 21, 20, 0, 0, 0, time.UTC), false),
			testutil.Act("a1", "Praia", time.Date(2025, 7, 21, 9, 0, 0, 0, time.UTC), true),
		),
		testutil.Day(t, "2025-07-22"),
	}
}

func TestLoad(t *testing.T) {
	gw := &testutil.FakeGateway{
		ListActivitiesFunc: func(ctx context.Context, id string) ([]models.DayActivities, error) {
			if id != tripID {
				t.Errorf("ListActivities called with trip %q", id)
			}
			return listFixture(t), nil
		},
	}
	b := newTestBoard(gw)

	if err := b.Load(context.Background(), tripID); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	groups := b.Groups()
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}

	// Groups ascend by day.
	wantDays := []string{"2025-07-21", "2025-07-22", "2025-07-23"}
	for i, want := range wantDays {
		if groups[i].Date.String() != want {
			t.Errorf("group[%d] date = %s, want %s", i, groups[i].Date, want)
		}
	}

	// Day metadata: 2025-07-21 is a Monday.
	if groups[0].DayNumber != 21 {
		t.Errorf("day number = %d, want 21", groups[0].DayNumber)
	}
	if groups[0].DayName != "segunda" {
		t.Errorf("day name = %q, want segunda", groups[0].DayName)
	}

	// Activities ascend by time within the day.
	first := groups[0].Activities
	if len(first) != 2 || first[0].ID != "a1" || first[1].ID != "a2" {
		t.Errorf("day activities out of order: %+v", first)
	}

	// Empty days survive grouping.
	if len(groups[1].Activities) != 0 {
		t.Errorf("expected empty group for 2025-07-22, got %+v", groups[1].Activities)
	}
}

func TestLoadFailureKeepsGroups(t *testing.T) {
	healthy := true
	gw := &testutil.FakeGateway{}
	gw.ListActivitiesFunc = func(ctx context.Context, id string) ([]models.DayActivities, error) {
		if !healthy {
			return nil, errors.New("boom")
		}
		return listFixture(t), nil
	}
	b := newTestBoard(gw)

	if err := b.Load(context.Background(), tripID); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	before := b.Groups()

	healthy = false
	err := b.Load(context.Background(), tripID)
	if apperrors.CodeOf(err) != apperrors.CodeRemoteFailure {
		t.Fatalf("error code = %v, want REMOTE_FAILURE", apperrors.CodeOf(err))
	}

	if !reflect.DeepEqual(before, b.Groups()) {
		t.Error("failed load overwrote previously loaded groups")
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	gw := &testutil.FakeGateway{
		ListActivitiesFunc: func(ctx context.Context, id string) ([]models.DayActivities, error) {
			return listFixture(t), nil
		},
	}
	b := newTestBoard(gw)

	if err := b.Load(context.Background(), tripID); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	first := b.Groups()

	if err := b.Load(context.Background(), tripID); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if !reflect.DeepEqual(first, b.Groups()) {
		t.Error("reloading an unchanged collection changed the grouping")
	}
}

func TestCreateActivityValidation(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		date      string // "" means unset
		hour      string
		wantCode  apperrors.Code
		wantField string
	}{
		{
			name:      "missing title",
			date:      "2025-07-22",
			hour:      "10",
			wantCode:  apperrors.CodeActivityIncomplete,
			wantField: "title",
		},
		{
			name:      "missing date",
			title:     "Passeio",
			hour:      "10",
			wantCode:  apperrors.CodeActivityIncomplete,
			wantField: "date",
		},
		{
			name:      "missing hour",
			title:     "Passeio",
			date:      "2025-07-22",
			wantCode:  apperrors.CodeActivityIncomplete,
			wantField: "hour",
		},
		{
			name:      "hour out of range",
			title:     "Passeio",
			date:      "2025-07-22",
			hour:      "25",
			wantCode:  apperrors.CodeActivityInvalidHour,
			wantField: "hour",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &testutil.FakeGateway{}
			b := newTestBoard(gw)

			b.SetTitle(tt.title)
			if tt.date != "" {
				b.SetDate(testutil.MustDate(t, tt.date))
			}
			b.SetHour(tt.hour)

			_, err := b.CreateActivity(context.Background(), tripID)
			if apperrors.CodeOf(err) != tt.wantCode {
				t.Errorf("error code = %v, want %v", apperrors.CodeOf(err), tt.wantCode)
			}
			if apperrors.FieldOf(err) != tt.wantField {
				t.Errorf("error field = %q, want %q", apperrors.FieldOf(err), tt.wantField)
			}
			if gw.Calls("CreateActivity") != 0 {
				t.Error("validation failure should not reach the gateway")
			}
		})
	}
}

func TestCreateActivity(t *testing.T) {
	gw := &testutil.FakeGateway{
		CreateActivityFunc: func(ctx context.Context, id string, req models.CreateActivityRequest) (string, error) {
			want := time.Date(2025, 7, 22, 18, 0, 0, 0, time.UTC)
			if !req.OccursAt.Equal(want) {
				t.Errorf("occurs_at = %v, want %v", req.OccursAt, want)
			}
			if req.Title != "Jantar no centro" {
				t.Errorf("title = %q", req.Title)
			}
			return "a9", nil
		},
		ListActivitiesFunc: func(ctx context.Context, id string) ([]models.DayActivities, error) {
			return listFixture(t), nil
		},
	}
	b := newTestBoard(gw)

	b.SetTitle("Jantar no centro")
	b.SetDate(testutil.MustDate(t, "2025-07-22"))
	b.SetHour("18")

	activityID, err := b.CreateActivity(context.Background(), tripID)
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
	if activityID != "a9" {
		t.Errorf("activityID = %q, want a9", activityID)
	}

	// A successful create triggers a full resync, not an incremental merge.
	if gw.Calls("ListActivities") != 1 {
		t.Errorf("ListActivities called %d times, want 1", gw.Calls("ListActivities"))
	}
	if len(b.Groups()) != 3 {
		t.Errorf("groups not reloaded after create")
	}

	// Staged input cleared: an immediate retry is incomplete again.
	_, err = b.CreateActivity(context.Background(), tripID)
	if apperrors.CodeOf(err) != apperrors.CodeActivityIncomplete {
		t.Errorf("staged input not cleared, got %v", err)
	}
}

func TestSetHourSanitizes(t *testing.T) {
	gw := &testutil.FakeGateway{
		CreateActivityFunc: func(ctx context.Context, id string, req models.CreateActivityRequest) (string, error) {
			if req.OccursAt.Hour() != 12 {
				t.Errorf("hour = %d, want 12", req.OccursAt.Hour())
			}
			return "a1", nil
		},
	}
	b := newTestBoard(gw)

	b.SetTitle("Passeio")
	b.SetDate(testutil.MustDate(t, "2025-07-22"))
	b.SetHour("1.2") // decimal separator stripped, reads as 12

	if _, err := b.CreateActivity(context.Background(), tripID); err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
}

func TestToggleCheck(t *testing.T) {
	gw := &testutil.FakeGateway{
		ListActivitiesFunc: func(ctx context.Context, id string) ([]models.DayActivities, error) {
			return listFixture(t), nil
		},
	}
	b := newTestBoard(gw)

	if err := b.Load(context.Background(), tripID); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	before := b.Groups()

	if err := b.ToggleCheck(context.Background(), tripID, "a2"); err != nil {
		t.Fatalf("ToggleCheck failed: %v", err)
	}
	if gw.Calls("CheckActivity") != 1 {
		t.Errorf("CheckActivity called %d times, want 1", gw.Calls("CheckActivity"))
	}

	// The done flag is never flipped locally; the board only asks for a
	// reload so server truth wins.
	if !reflect.DeepEqual(before, b.Groups()) {
		t.Error("ToggleCheck mutated local state")
	}
	if !b.NeedsRefresh() {
		t.Error("ToggleCheck should flag the board for refresh")
	}

	if err := b.Load(context.Background(), tripID); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if b.NeedsRefresh() {
		t.Error("Load should clear the refresh flag")
	}
}

func TestToggleCheckFailure(t *testing.T) {
	gw := &testutil.FakeGateway{
		CheckActivityFunc: func(ctx context.Context, id, activityID string) error {
			return errors.New("boom")
		},
	}
	b := newTestBoard(gw)

	err := b.ToggleCheck(context.Background(), tripID, "a2")
	if apperrors.CodeOf(err) != apperrors.CodeRemoteFailure {
		t.Fatalf("error code = %v, want REMOTE_FAILURE", apperrors.CodeOf(err))
	}
	if b.NeedsRefresh() {
		t.Error("failed check should not flag a refresh")
	}
}

func TestDelete(t *testing.T) {
	gw := &testutil.FakeGateway{
		ListActivitiesFunc: func(ctx context.Context, id string) ([]models.DayActivities, error) {
			return listFixture(t), nil
		},
	}
	b := newTestBoard(gw)

	if err := b.Delete(context.Background(), tripID, "a2"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if gw.Calls("RemoveActivity") != 1 {
		t.Errorf("RemoveActivity called %d times, want 1", gw.Calls("RemoveActivity"))
	}
	if gw.Calls("ListActivities") != 1 {
		t.Error("Delete should reload after removing")
	}
}

func TestMutationsSerialized(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	gw := &testutil.FakeGateway{
		CheckActivityFunc: func(ctx context.Context, id, activityID string) error {
			close(entered)
			<-release
			return nil
		},
	}
	b := newTestBoard(gw)

	done := make(chan error, 1)
	go func() {
		done <- b.ToggleCheck(context.Background(), tripID, "a1")
	}()

	<-entered

	// A second mutating call while one is pending is rejected, not queued.
	err := b.Delete(context.Background(), tripID, "a2")
	if apperrors.CodeOf(err) != apperrors.CodeConflictInFlight {
		t.Errorf("error code = %v, want CONFLICT_IN_FLIGHT", apperrors.CodeOf(err))
	}
	if gw.Calls("RemoveActivity") != 0 {
		t.Error("rejected delete reached the gateway")
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first mutation failed: %v", err)
	}
}

func TestIsPast(t *testing.T) {
	b := newTestBoard(&testutil.FakeGateway{})

	past := testutil.Act("a1", "Praia", fixedNow.Add(-time.Hour), false)
	future := testutil.Act("a2", "Jantar", fixedNow.Add(time.Hour), false)

	if !b.IsPast(past) {
		t.Error("activity an hour ago should be past")
	}
	if b.IsPast(future) {
		t.Error("activity an hour ahead should not be past")
	}
}
