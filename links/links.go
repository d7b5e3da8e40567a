// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package links manages a trip's important links and its guest list.
package links

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/danielhkuo/planner/apperrors"
	"github.com/danielhkuo/planner/models"
	"github.com/danielhkuo/planner/validate"
)

// LinkGateway is the remote links and participants collection for a trip.
type LinkGateway interface {
	ListLinks(ctx context.Context, tripID string) ([]models.TripLink, error)
	CreateLink(ctx context.Context, tripID string, req models.CreateLinkRequest) (string, error)
	ListParticipants(ctx context.Context, tripID string) ([]models.Participant, error)
}

// Manager holds the loaded links and participants of one trip plus the
// staged new-link input. Creation is serialized like every other mutating
// operation.
type Manager struct {
	mu           sync.Mutex
	gateway      LinkGateway
	links        []models.TripLink
	participants []models.Participant
	mutating     bool

	// staged new-link input
	title string
	url   string

	logger *slog.Logger
}

// New creates a manager backed by the given gateway.
func New(gateway LinkGateway) *Manager {
	return &Manager{gateway: gateway, logger: slog.Default()}
}

// Load fetches the trip's links and participants. On failure the
// previously loaded lists are left untouched.
func (m *Manager) Load(ctx context.Context, tripID string) error {
	links, err := m.gateway.ListLinks(ctx, tripID)
	if err != nil {
		m.logger.Error("links load failed", "trip_id", tripID, "error", err)
		return apperrors.Wrap(apperrors.CodeRemoteFailure, "could not load links", err)
	}

	participants, err := m.gateway.ListParticipants(ctx, tripID)
	if err != nil {
		m.logger.Error("participants load failed", "trip_id", tripID, "error", err)
		return apperrors.Wrap(apperrors.CodeRemoteFailure, "could not load participants", err)
	}

	m.mu.Lock()
	m.links = links
	m.participants = participants
	m.mu.Unlock()
	return nil
}

// Links returns the loaded links.
func (m *Manager) Links() []models.TripLink {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.TripLink, len(m.links))
	copy(out, m.links)
	return out
}

// Participants returns the loaded guest list.
func (m *Manager) Participants() []models.Participant {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Participant, len(m.participants))
	copy(out, m.participants)
	return out
}

// SetTitle stages the new-link title input.
func (m *Manager) SetTitle(title string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.title = title
}

// SetURL stages the new-link URL input.
func (m *Manager) SetURL(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.url = url
}

// CreateLink submits the staged link, then resynchronizes with a full
// reload. The title must be non-empty and the URL syntactically valid.
func (m *Manager) CreateLink(ctx context.Context, tripID string) (string, error) {
	m.mu.Lock()
	if m.mutating {
		m.mu.Unlock()
		return "", apperrors.New(apperrors.CodeConflictInFlight, "link creation already in progress")
	}

	title := strings.TrimSpace(m.title)
	url := strings.TrimSpace(m.url)

	if title == "" {
		m.mu.Unlock()
		return "", apperrors.NewField(apperrors.CodeLinkTitleEmpty, "title", "link title is required")
	}
	if !validate.URL(url) {
		m.mu.Unlock()
		return "", apperrors.NewField(apperrors.CodeLinkInvalidURL, "url", "invalid link URL")
	}

	m.mutating = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.mutating = false
		m.mu.Unlock()
	}()

	linkID, err := m.gateway.CreateLink(ctx, tripID, models.CreateLinkRequest{Title: title, URL: url})
	if err != nil {
		m.logger.Error("link creation failed", "trip_id", tripID, "error", err)
		return "", apperrors.Wrap(apperrors.CodeRemoteFailure, "could not create link", err)
	}

	m.logger.Info("link created", "trip_id", tripID, "link_id", linkID)

	if err := m.Load(ctx, tripID); err != nil {
		return linkID, err
	}

	m.mu.Lock()
	m.title, m.url = "", ""
	m.mu.Unlock()
	return linkID, nil
}
