// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package ics exports a trip's activity schedule as an iCalendar document.
package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/danielhkuo/planner/models"
)

// activityDuration is the block reserved per activity; the planner API
// stores only a start time.
const activityDuration = time.Hour

// Itinerary builds an iCalendar with one VEVENT per activity, located at
// the trip's destination.
func Itinerary(trip models.Trip, groups []models.ActivityGroup) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//planner//itinerary//EN")

	now := time.Now().UTC()
	for _, group := range groups {
		for _, activity := range group.Activities {
			event := cal.AddEvent(fmt.Sprintf("%s@planner", activity.ID))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetStartAt(activity.OccursAt)
			event.SetEndAt(activity.OccursAt.Add(activityDuration))
			event.SetSummary(activity.Title)
			event.SetLocation(trip.Destination)
			if activity.Done {
				event.SetStatus(ical.ObjectStatusCompleted)
			}
		}
	}
	return cal
}

// Write serializes the itinerary for trip to w.
func Write(w io.Writer, trip models.Trip, groups []models.ActivityGroup) error {
	if err := Itinerary(trip, groups).SerializeTo(w); err != nil {
		return fmt.Errorf("serialize itinerary: %w", err)
	}
	return nil
}
