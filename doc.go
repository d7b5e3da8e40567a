// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the planner command, a client for the plann.er trip
API.

The engine lets a device plan one trip at a time: pick a destination and
date range, invite guests by email, schedule dated activities, and track
their completion, all against a remote trip record. The device persists
only the id of its current trip; the remote API is the sole authority over
durable state.

# Running

The command resumes the device's current trip and prints its activity
schedule:

	PLANNER_API_URL=http://localhost:3333 go run .

When no trip is open yet, one can be created in place:

	go run . -destination "Florianópolis" -start 2025-11-21 -end 2025-11-23 \
		-invites ana@example.com,bruno@example.com

Export the schedule as iCalendar instead:

	go run . -export itinerary.ics

# Configuration

Settings come from a .env file, the environment, or flags (see the
cliparse package):

  - PLANNER_API_URL (-api): Planner API base URL
  - PLANNER_DB (-db): device store sqlite file
  - PLANNER_OWNER_NAME / PLANNER_OWNER_EMAIL: trip creator identity
  - PLANNER_LOCALE (-locale): pt-BR (default) or en

# Architecture

The engine packages hold the state machines; I/O lives at the edges:

  - calendar: date-range selection and localized calendar labels
  - wizard: the create-trip flow (details → invites → confirmed)
  - invites: the deduplicated, validated guest email set
  - board: activity day groups, check/delete, swipe-to-delete rows
  - session: the device's single current trip and the trip edit flow
  - links: important links and the guest list
  - gateway: HTTP client for the remote trip/activity/link gateways
  - store: sqlite-backed single-value trip handle store
  - apperrors: the error taxonomy shared by every operation boundary
  - ics: iCalendar itinerary export
  - models, cliparse, validate, testutil: types, config, input syntax
    checks, and test helpers

See package documentation for each component.
*/
package main
