// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gateway is the HTTP client for the planner API.

One Client implements every remote collaborator the engine depends on:

  - Trip gateway: CreateTrip, GetTrip, UpdateTrip
  - Activity gateway: ListActivities, CreateActivity, RemoveActivity,
    CheckActivity
  - Links/Participants gateways: ListLinks, CreateLink, ListParticipants

# Endpoints

	POST   /trips
	GET    /trips/{id}
	PUT    /trips/{id}
	GET    /trips/{id}/activities
	POST   /trips/{id}/activities
	DELETE /trips/{id}/activities/{activityId}
	PUT    /trips/{id}/activities/{activityId}/check
	GET    /trips/{id}/links
	POST   /trips/{id}/links
	GET    /trips/{id}/participants

Requests and responses are JSON with the shapes in the models package.
Every request carries an X-Request-ID for log correlation. Non-2xx
responses become plain errors carrying the API's message; the engine
packages wrap them into their REMOTE_FAILURE taxonomy at the operation
boundary. The client attaches no retry logic: retrying is always a new
user-initiated action.
*/
package gateway
