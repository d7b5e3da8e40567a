// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/danielhkuo/planner/apperrors"
	"github.com/danielhkuo/planner/calendar"
	"github.com/danielhkuo/planner/models"
)

// ActivityGateway is the remote activity collection for a trip.
type ActivityGateway interface {
	ListActivities(ctx context.Context, tripID string) ([]models.DayActivities, error)
	CreateActivity(ctx context.Context, tripID string, req models.CreateActivityRequest) (string, error)
	RemoveActivity(ctx context.Context, tripID, activityID string) error
	CheckActivity(ctx context.Context, tripID, activityID string) error
}

// Board manages the scheduled activities of one trip: day grouping, staged
// creation input, and the check/delete mutations reconciled against the
// remote gateway. Mutations are serialized; a second mutating call while
// one is pending fails with CONFLICT_IN_FLIGHT rather than queueing.
type Board struct {
	mu           sync.Mutex
	gateway      ActivityGateway
	locale       language.Tag
	now          func() time.Time
	groups       []models.ActivityGroup
	needsRefresh bool
	mutating     bool

	// staged new-activity input
	title string
	date  models.Date
	hour  string

	logger *slog.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithLocale sets the locale used for group day names.
func WithLocale(tag language.Tag) Option {
	return func(b *Board) { b.locale = tag }
}

// WithClock overrides the wall clock used for past-activity checks.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// New creates a board backed by the given gateway.
func New(gateway ActivityGateway, opts ...Option) *Board {
	b := &Board{
		gateway: gateway,
		locale:  language.BrazilianPortuguese,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load fetches the trip's activities and rebuilds the day groups, sorted
// ascending by day and within each day ascending by time. On failure the
// previously loaded groups are left untouched.
func (b *Board) Load(ctx context.Context, tripID string) error {
	days, err := b.gateway.ListActivities(ctx, tripID)
	if err != nil {
		b.logger.Error("activity load failed", "trip_id", tripID, "error", err)
		return apperrors.Wrap(apperrors.CodeRemoteFailure, "could not load activities", err)
	}

	groups := make([]models.ActivityGroup, 0, len(days))
	for _, day := range days {
		date := models.NewDate(day.Date)

		activities := make([]models.Activity, len(day.Activities))
		copy(activities, day.Activities)
		sort.SliceStable(activities, func(i, j int) bool {
			return activities[i].OccursAt.Before(activities[j].OccursAt)
		})

		groups = append(groups, models.ActivityGroup{
			Date:       date,
			DayNumber:  date.Day,
			DayName:    calendar.WeekdayName(date, b.locale),
			Activities: activities,
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})

	b.mu.Lock()
	b.groups = groups
	b.needsRefresh = false
	b.mu.Unlock()
	return nil
}

// Groups returns the last successfully loaded day groups.
func (b *Board) Groups() []models.ActivityGroup {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.ActivityGroup, len(b.groups))
	copy(out, b.groups)
	return out
}

// NeedsRefresh reports whether a remote mutation has made the loaded
// groups stale. Load clears the flag.
func (b *Board) NeedsRefresh() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.needsRefresh
}

// SetTitle stages the new-activity title input.
func (b *Board) SetTitle(title string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.title = title
}

// SetDate stages the new-activity date input.
func (b *Board) SetDate(date models.Date) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.date = date
}

// SetHour stages the new-activity hour input. Decimal separators are
// stripped and the value is capped at two digits, mirroring the numeric
// keyboard field.
func (b *Board) SetHour(hour string) {
	hour = strings.NewReplacer(".", "", ",", "").Replace(hour)
	if len(hour) > 2 {
		hour = hour[:2]
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.hour = hour
}

// CreateActivity submits the staged activity and resynchronizes with a full
// reload; there is no incremental merge. The staged input is cleared only
// after the create succeeds. Fails with ACTIVITY_INCOMPLETE when any field
// is missing.
func (b *Board) CreateActivity(ctx context.Context, tripID string) (string, error) {
	b.mu.Lock()
	if b.mutating {
		b.mu.Unlock()
		return "", apperrors.New(apperrors.CodeConflictInFlight, "activity mutation already in progress")
	}

	title := strings.TrimSpace(b.title)
	date := b.date
	hourInput := b.hour

	if title == "" {
		b.mu.Unlock()
		return "", apperrors.NewField(apperrors.CodeActivityIncomplete, "title", "activity title is required")
	}
	if date.IsZero() {
		b.mu.Unlock()
		return "", apperrors.NewField(apperrors.CodeActivityIncomplete, "date", "activity date is required")
	}
	if hourInput == "" {
		b.mu.Unlock()
		return "", apperrors.NewField(apperrors.CodeActivityIncomplete, "hour", "activity hour is required")
	}

	hour, err := strconv.Atoi(hourInput)
	if err != nil || hour < 0 || hour > 23 {
		b.mu.Unlock()
		return "", apperrors.NewField(apperrors.CodeActivityInvalidHour, "hour", "hour must be between 0 and 23")
	}

	b.mutating = true
	b.mu.Unlock()
	defer b.clearMutating()

	req := models.CreateActivityRequest{
		Title:    title,
		OccursAt: date.At(hour),
	}

	activityID, err := b.gateway.CreateActivity(ctx, tripID, req)
	if err != nil {
		b.logger.Error("activity creation failed", "trip_id", tripID, "error", err)
		return "", apperrors.Wrap(apperrors.CodeRemoteFailure, "could not create activity", err)
	}

	b.logger.Info("activity created", "trip_id", tripID, "activity_id", activityID, "occurs_at", req.OccursAt)

	if err := b.Load(ctx, tripID); err != nil {
		return activityID, err
	}

	b.mu.Lock()
	b.title, b.date, b.hour = "", models.Date{}, ""
	b.mu.Unlock()
	return activityID, nil
}

// ToggleCheck flips an activity's done flag through the remote check
// endpoint. The local collection is deliberately not mutated: the board is
// flagged as needing a refresh so the caller reloads, keeping the server as
// the single source of truth.
func (b *Board) ToggleCheck(ctx context.Context, tripID, activityID string) error {
	if err := b.beginMutation(); err != nil {
		return err
	}
	defer b.clearMutating()

	if err := b.gateway.CheckActivity(ctx, tripID, activityID); err != nil {
		b.logger.Error("activity check failed", "trip_id", tripID, "activity_id", activityID, "error", err)
		return apperrors.Wrap(apperrors.CodeRemoteFailure, "could not update activity", err)
	}

	b.mu.Lock()
	b.needsRefresh = true
	b.mu.Unlock()
	return nil
}

// Delete removes an activity through the remote gateway, then reloads.
func (b *Board) Delete(ctx context.Context, tripID, activityID string) error {
	if err := b.beginMutation(); err != nil {
		return err
	}
	defer b.clearMutating()

	if err := b.gateway.RemoveActivity(ctx, tripID, activityID); err != nil {
		b.logger.Error("activity delete failed", "trip_id", tripID, "activity_id", activityID, "error", err)
		return apperrors.Wrap(apperrors.CodeRemoteFailure, "could not delete activity", err)
	}

	b.logger.Info("activity deleted", "trip_id", tripID, "activity_id", activityID)
	return b.Load(ctx, tripID)
}

// IsPast reports whether the activity occurs before the current wall-clock
// time. Evaluated at call time, never cached.
func (b *Board) IsPast(a models.Activity) bool {
	return a.OccursAt.Before(b.now())
}

func (b *Board) beginMutation() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.mutating {
		return apperrors.New(apperrors.CodeConflictInFlight, "activity mutation already in progress")
	}
	b.mutating = true
	return nil
}

func (b *Board) clearMutating() {
	b.mu.Lock()
	b.mutating = false
	b.mu.Unlock()
}
