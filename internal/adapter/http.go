// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-notes-board/internal/config"
	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/utils"
	"github.com/MKhiriev/go-notes-board/models"
)

type httpNotesAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNotesAdapter constructs an HTTP/REST implementation of [NotesAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPNotesAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (NotesAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().Str("method", req.Method).Str("url", req.URL).Msg("sending request")
		return nil
	})

	return &httpNotesAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListNotes implements [NotesAdapter] with GET /notes?page=&limit=.
func (h *httpNotesAdapter) ListNotes(ctx context.Context, page, limit int) (models.NotesPage, error) {
	var notesPage models.NotesPage

	req := h.client.R().
		SetContext(ctx).
		SetResult(&notesPage)
	if page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page))
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/notes")
	if err != nil {
		return models.NotesPage{}, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NotesPage{}, err
	}

	return notesPage, nil
}

// CreateNote implements [NotesAdapter] with POST /notes.
func (h *httpNotesAdapter) CreateNote(ctx context.Context, note models.CreateNoteRequest) (models.NoteResponse, error) {
	var created models.NoteResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(note).
		SetResult(&created).
		Post("/notes")
	if err != nil {
		return models.NoteResponse{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteResponse{}, err
	}

	return created, nil
}

// LikeNote implements [NotesAdapter] with PATCH /notes/{id}/like.
func (h *httpNotesAdapter) LikeNote(ctx context.Context, id string) (models.NoteResponse, error) {
	return h.patchLikes(ctx, id, "like")
}

// UnlikeNote implements [NotesAdapter] with PATCH /notes/{id}/unlike.
func (h *httpNotesAdapter) UnlikeNote(ctx context.Context, id string) (models.NoteResponse, error) {
	return h.patchLikes(ctx, id, "unlike")
}

func (h *httpNotesAdapter) patchLikes(ctx context.Context, id, action string) (models.NoteResponse, error) {
	if strings.TrimSpace(id) == "" {
		return models.NoteResponse{}, ErrEmptyNoteID
	}

	var updated models.NoteResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&updated).
		Patch("/notes/{id}/" + action)
	if err != nil {
		return models.NoteResponse{}, fmt.Errorf("%s note request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteResponse{}, err
	}

	return updated, nil
}

// DeleteNote implements [NotesAdapter] with DELETE /notes/{id}.
func (h *httpNotesAdapter) DeleteNote(ctx context.Context, id string) (models.MessageResponse, error) {
	if strings.TrimSpace(id) == "" {
		return models.MessageResponse{}, ErrEmptyNoteID
	}

	var deleted models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&deleted).
		Delete("/notes/{id}")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("delete note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return deleted, nil
}

// GetVersion implements [NotesAdapter] with GET /api/version.
func (h *httpNotesAdapter) GetVersion(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}
