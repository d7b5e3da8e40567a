// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/planner/models"
)

// Client talks to the planner API. It implements the Trip, Activity, Link,
// and Participant gateways consumed by the engine packages.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
}

// New creates a client for the API at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   &http.Client{Timeout: timeout},
		logger: slog.Default(),
	}
}

// do issues one JSON request. A non-nil body is encoded as the request
// payload; a non-nil out receives the decoded response body. Responses
// outside the 2xx range become errors carrying the API's message when one
// is present.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(encoded)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr models.APIError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// CreateTrip creates a trip and returns its id.
func (c *Client) CreateTrip(ctx context.Context, req models.CreateTripRequest) (string, error) {
	var resp models.CreateTripResponse
	if err := c.do(ctx, http.MethodPost, "/trips", req, &resp); err != nil {
		return "", err
	}
	return resp.TripID, nil
}

// GetTrip fetches a trip by id.
func (c *Client) GetTrip(ctx context.Context, tripID string) (models.Trip, error) {
	var resp models.GetTripResponse
	if err := c.do(ctx, http.MethodGet, "/trips/"+tripID, nil, &resp); err != nil {
		return models.Trip{}, err
	}
	return resp.Trip, nil
}

// UpdateTrip updates a trip's destination and dates.
func (c *Client) UpdateTrip(ctx context.Context, tripID string, req models.UpdateTripRequest) error {
	return c.do(ctx, http.MethodPut, "/trips/"+tripID, req, nil)
}

// ListActivities fetches a trip's activities grouped by date.
func (c *Client) ListActivities(ctx context.Context, tripID string) ([]models.DayActivities, error) {
	var resp models.ListActivitiesResponse
	if err := c.do(ctx, http.MethodGet, "/trips/"+tripID+"/activities", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Activities, nil
}

// CreateActivity schedules an activity and returns its id.
func (c *Client) CreateActivity(ctx context.Context, tripID string, req models.CreateActivityRequest) (string, error) {
	var resp models.CreateActivityResponse
	if err := c.do(ctx, http.MethodPost, "/trips/"+tripID+"/activities", req, &resp); err != nil {
		return "", err
	}
	return resp.ActivityID, nil
}

// RemoveActivity deletes an activity.
func (c *Client) RemoveActivity(ctx context.Context, tripID, activityID string) error {
	return c.do(ctx, http.MethodDelete, "/trips/"+tripID+"/activities/"+activityID, nil, nil)
}

// CheckActivity flips an activity's done flag on the server.
func (c *Client) CheckActivity(ctx context.Context, tripID, activityID string) error {
	return c.do(ctx, http.MethodPut, "/trips/"+tripID+"/activities/"+activityID+"/check", nil, nil)
}

// ListLinks fetches a trip's important links.
func (c *Client) ListLinks(ctx context.Context, tripID string) ([]models.TripLink, error) {
	var resp models.ListLinksResponse
	if err := c.do(ctx, http.MethodGet, "/trips/"+tripID+"/links", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Links, nil
}

// CreateLink attaches a link to a trip and returns its id.
func (c *Client) CreateLink(ctx context.Context, tripID string, req models.CreateLinkRequest) (string, error) {
	var resp models.CreateLinkResponse
	if err := c.do(ctx, http.MethodPost, "/trips/"+tripID+"/links", req, &resp); err != nil {
		return "", err
	}
	return resp.LinkID, nil
}

// ListParticipants fetches a trip's guest list.
func (c *Client) ListParticipants(ctx context.Context, tripID string) ([]models.Participant, error) {
	var resp models.ListParticipantsResponse
	if err := c.do(ctx, http.MethodGet, "/trips/"+tripID+"/participants", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Participants, nil
}
