// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the planner
client engine.

# Domain Types

  - Date: a calendar date without a time of day; comparable, so it can key
    maps of marked days
  - DateRange: ordered {start, end} pair with optionally absent bounds
  - MarkKind: display role of a day inside a selected range
  - Trip: the remote trip record
  - Activity: a scheduled activity with its occurrence time and done flag
  - DayActivities: the wire grouping returned by the activity gateway
  - ActivityGroup: the derived per-day grouping used for display
  - Participant, TripLink: trip guests and important links

# Request Types

Payloads sent to the planner API:

  - CreateTripRequest: destination, starts_at, ends_at, emails_to_invite,
    owner_name, owner_email
  - UpdateTripRequest: destination, starts_at, ends_at
  - CreateActivityRequest: title, occurs_at
  - CreateLinkRequest: title, url

# Response Types

Payloads received from the planner API:

  - CreateTripResponse: tripId
  - GetTripResponse: trip
  - ListActivitiesResponse: activities grouped by date
  - CreateActivityResponse: activityId
  - ListLinksResponse, CreateLinkResponse, ListParticipantsResponse
  - APIError: message

DateRange holds the invariant that Start <= End whenever both are set; the
calendar package's ApplySelection is the only producer of complete ranges.
*/
package models
