package models

import (
	"fmt"
	"time"
)

// Marker kinds for calendar day decoration
const (
	MarkNone MarkKind = iota
	MarkStart
	MarkEnd
	MarkWithinRange
	MarkSingle
)

// MarkKind is the display role of a calendar day inside a selected range.
type MarkKind int

// Date is a calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate extracts the calendar date from t.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t), nil
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// At returns d at the given hour, UTC.
func (d Date) At(hour int) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, 0, 0, 0, time.UTC)
}

// Before reports whether d falls before o.
func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

// After reports whether d falls after o.
func (d Date) After(o Date) bool {
	return o.Before(d)
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// DateRange is an ordered pair of calendar dates. Either bound may be nil
// while a selection is in progress; when both are set, Start <= End.
type DateRange struct {
	Start *Date
	End   *Date
}

// Complete reports whether both bounds are set.
func (r DateRange) Complete() bool {
	return r.Start != nil && r.End != nil
}

// Trip is the remote trip record.
type Trip struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// Activity is a scheduled trip activity.
type Activity struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
	Done     bool      `json:"done"`
}

// DayActivities is the wire grouping returned by the activity gateway:
// one calendar day and the activities scheduled on it.
type DayActivities struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}

// ActivityGroup is the derived, read-only grouping of activities by day.
// It is recomputed from the activity collection, never mutated directly.
type ActivityGroup struct {
	Date       Date
	DayNumber  int
	DayName    string
	Activities []Activity
}

// Participant is a trip guest.
type Participant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsConfirmed bool   `json:"is_confirmed"`
}

// TripLink is an important link attached to a trip.
type TripLink struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Request types

type CreateTripRequest struct {
	Destination    string    `json:"destination"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	EmailsToInvite []string  `json:"emails_to_invite"`
	OwnerName      string    `json:"owner_name"`
	OwnerEmail     string    `json:"owner_email"`
}

type UpdateTripRequest struct {
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

type CreateActivityRequest struct {
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

type CreateLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Response types

type CreateTripResponse struct {
	TripID string `json:"tripId"`
}

type GetTripResponse struct {
	Trip Trip `json:"trip"`
}

type ListActivitiesResponse struct {
	Activities []DayActivities `json:"activities"`
}

type CreateActivityResponse struct {
	ActivityID string `json:"activityId"`
}

type ListLinksResponse struct {
	Links []TripLink `json:"links"`
}

type CreateLinkResponse struct {
	LinkID string `json:"linkId"`
}

type ListParticipantsResponse struct {
	Participants []Participant `json:"participants"`
}

// APIError is the error body returned by the planner API.
type APIError struct {
	Message string `json:"message"`
}
