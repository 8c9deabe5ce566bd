// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-board/internal/config"
	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/store"
	"github.com/MKhiriev/go-notes-board/models"
)

type noteService struct {
	repo store.NoteRepository

	defaultPageSize int
	maxPageSize     int

	logger *logger.Logger
}

// NewNoteService returns the core NoteService. It expects validated input;
// wrap it with NewNoteValidationService to reject empty fields.
func NewNoteService(repo store.NoteRepository, cfg config.App, logger *logger.Logger) NoteService {
	return &noteService{
		repo:            repo,
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
		logger:          logger,
	}
}

func (s *noteService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	note, err := s.repo.Create(ctx, strings.TrimSpace(req.Content), strings.TrimSpace(req.Author))
	if err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}

	logger.FromContext(ctx).Info().Str("note_id", note.ID).Msg("note created")
	return note, nil
}

func (s *noteService) ListNotes(ctx context.Context, query models.ListNotesQuery) (models.NotesPage, error) {
	query = s.normalizeQuery(query)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return models.NotesPage{}, fmt.Errorf("count notes: %w", err)
	}

	notes := []models.Note{}
	if offset := query.Offset(); int64(offset) < total {
		notes, err = s.repo.List(ctx, offset, query.Limit)
		if err != nil {
			return models.NotesPage{}, fmt.Errorf("list notes: %w", err)
		}
		if notes == nil {
			notes = []models.Note{}
		}
	}

	return models.NotesPage{
		Notes:       notes,
		CurrentPage: query.Page,
		TotalPages:  totalPages(total, query.Limit),
		TotalNotes:  total,
	}, nil
}

// normalizeQuery replaces non-positive values with defaults and caps the
// limit at the configured maximum.
func (s *noteService) normalizeQuery(query models.ListNotesQuery) models.ListNotesQuery {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = s.defaultPageSize
	}
	if s.maxPageSize > 0 && query.Limit > s.maxPageSize {
		query.Limit = s.maxPageSize
	}
	return query
}

func totalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func (s *noteService) LikeNote(ctx context.Context, id string) (models.Note, error) {
	note, err := s.repo.IncrementLikes(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("like note %s: %w", id, err)
	}
	return note, nil
}

func (s *noteService) UnlikeNote(ctx context.Context, id string) (models.Note, error) {
	note, err := s.repo.DecrementLikes(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("unlike note %s: %w", id, err)
	}
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}

	logger.FromContext(ctx).Info().Str("note_id", id).Msg("note deleted")
	return nil
}
