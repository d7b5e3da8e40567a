// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/planner/models"
)

// MustDate parses a YYYY-MM-DD date or fails the test.
func MustDate(t *testing.T, s string) models.Date {
	t.Helper()

	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("Failed to parse date %q: %v", s, err)
	}
	return d
}

// Act builds an activity for test fixtures.
func Act(id, title string, occursAt time.Time, done bool) models.Activity {
	return models.Activity{ID: id, Title: title, OccursAt: occursAt, Done: done}
}

// Day builds one wire day grouping for test fixtures.
func Day(t *testing.T, date string, activities ...models.Activity) models.DayActivities {
	t.Helper()

	return models.DayActivities{
		Date:       MustDate(t, date).Time(),
		Activities: activities,
	}
}

// FakeGateway implements the trip, activity, and link gateway interfaces
// with overridable function fields. Unset functions succeed with zero
// results. Calls counts invocations per method name.
type FakeGateway struct {
	mu    sync.Mutex
	calls map[string]int

	CreateTripFunc       func(ctx context.Context, req models.CreateTripRequest) (string, error)
	GetTripFunc          func(ctx context.Context, tripID string) (models.Trip, error)
	UpdateTripFunc       func(ctx context.Context, tripID string, req models.UpdateTripRequest) error
	ListActivitiesFunc   func(ctx context.Context, tripID string) ([]models.DayActivities, error)
	CreateActivityFunc   func(ctx context.Context, tripID string, req models.CreateActivityRequest) (string, error)
	RemoveActivityFunc   func(ctx context.Context, tripID, activityID string) error
	CheckActivityFunc    func(ctx context.Context, tripID, activityID string) error
	ListLinksFunc        func(ctx context.Context, tripID string) ([]models.TripLink, error)
	CreateLinkFunc       func(ctx context.Context, tripID string, req models.CreateLinkRequest) (string, error)
	ListParticipantsFunc func(ctx context.Context, tripID string) ([]models.Participant, error)
}

func (g *FakeGateway) record(method string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.calls == nil {
		g.calls = make(map[string]int)
	}
	g.calls[method]++
}

// Calls returns how many times the named gateway method was invoked.
func (g *FakeGateway) Calls(method string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[method]
}

func (g *FakeGateway) CreateTrip(ctx context.Context, req models.CreateTripRequest) (string, error) {
	g.record("CreateTrip")
	if g.CreateTripFunc != nil {
		return g.CreateTripFunc(ctx, req)
	}
	return "", nil
}

func (g *FakeGateway) GetTrip(ctx context.Context, tripID string) (models.Trip, error) {
	g.record("GetTrip")
	if g.GetTripFunc != nil {
		return g.GetTripFunc(ctx, tripID)
	}
	return models.Trip{}, nil
}

func (g *FakeGateway) UpdateTrip(ctx context.Context, tripID string, req models.UpdateTripRequest) error {
	g.record("UpdateTrip")
	if g.UpdateTripFunc != nil {
		return g.UpdateTripFunc(ctx, tripID, req)
	}
	return nil
}

func (g *FakeGateway) ListActivities(ctx context.Context, tripID string) ([]models.DayActivities, error) {
	g.record("ListActivities")
	if g.ListActivitiesFunc != nil {
		return g.ListActivitiesFunc(ctx, tripID)
	}
	return nil, nil
}

func (g *FakeGateway) CreateActivity(ctx context.Context, tripID string, req models.CreateActivityRequest) (string, error) {
	g.record("CreateActivity")
	if g.CreateActivityFunc != nil {
		return g.CreateActivityFunc(ctx, tripID, req)
	}
	return "", nil
}

func (g *FakeGateway) RemoveActivity(ctx context.Context, tripID, activityID string) error {
	g.record("RemoveActivity")
	if g.RemoveActivityFunc != nil {
		return g.RemoveActivityFunc(ctx, tripID, activityID)
	}
	return nil
}

func (g *FakeGateway) CheckActivity(ctx context.Context, tripID, activityID string) error {
	g.record("CheckActivity")
	if g.CheckActivityFunc != nil {
		return g.CheckActivityFunc(ctx, tripID, activityID)
	}
	return nil
}

func (g *FakeGateway) ListLinks(ctx context.Context, tripID string) ([]models.TripLink, error) {
	g.record("ListLinks")
	if g.ListLinksFunc != nil {
		return g.ListLinksFunc(ctx, tripID)
	}
	return nil, nil
}

func (g *FakeGateway) CreateLink(ctx context.Context, tripID string, req models.CreateLinkRequest) (string, error) {
	g.record("CreateLink")
	if g.CreateLinkFunc != nil {
		return g.CreateLinkFunc(ctx, tripID, req)
	}
	return "", nil
}

func (g *FakeGateway) ListParticipants(ctx context.Context, tripID string) ([]models.Participant, error) {
	g.record("ListParticipants")
	if g.ListParticipantsFunc != nil {
		return g.ListParticipantsFunc(ctx, tripID)
	}
	return nil, nil
}

// FakeStore is an in-memory session.Store with injectable failures.
type FakeStore struct {
	mu        sync.Mutex
	TripID    string
	GetErr    error
	SaveErr   error
	SaveCalls int
}

func (s *FakeStore) Get(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.GetErr != nil {
		return "", s.GetErr
	}
	return s.TripID, nil
}

func (s *FakeStore) Save(ctx context.Context, tripID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.TripID = tripID
	return nil
}
