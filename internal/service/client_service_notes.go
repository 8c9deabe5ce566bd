// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-board/internal/adapter"
	"github.com/MKhiriev/go-notes-board/internal/config"
	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/validators"
	"github.com/MKhiriev/go-notes-board/models"
)

type clientNoteService struct {
	adapter   adapter.NotesAdapter
	validator validators.Validator
	pageSize  int

	logger *logger.Logger
}

func NewClientNoteService(notesAdapter adapter.NotesAdapter, cfg config.ClientApp, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{
		adapter:   notesAdapter,
		validator: validators.NewNoteValidator(),
		pageSize:  cfg.PageSize,
		logger:    logger,
	}
}

func (s *clientNoteService) ListNotes(ctx context.Context, page int) (models.NotesPage, error) {
	notesPage, err := s.adapter.ListNotes(ctx, page, s.pageSize)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientNoteService.ListNotes").Int("page", page).Msg("error fetching notes")
		return models.NotesPage{}, mapAdapterError(err)
	}

	if notesPage.Notes == nil {
		notesPage.Notes = []models.Note{}
	}
	return notesPage, nil
}

func (s *clientNoteService) CreateNote(ctx context.Context, content, author string) (models.Note, error) {
	req := models.CreateNoteRequest{
		Content: strings.TrimSpace(content),
		Author:  strings.TrimSpace(author),
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	resp, err := s.adapter.CreateNote(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientNoteService.CreateNote").Msg("error creating note")
		return models.Note{}, mapAdapterError(err)
	}

	s.logger.Debug().Str("note_id", resp.Note.ID).Str("message", resp.Message).Msg("note created")
	return resp.Note, nil
}

func (s *clientNoteService) LikeNote(ctx context.Context, id string) (models.Note, error) {
	resp, err := s.adapter.LikeNote(ctx, id)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientNoteService.LikeNote").Str("note_id", id).Msg("error liking note")
		return models.Note{}, mapAdapterError(err)
	}
	return resp.Note, nil
}

func (s *clientNoteService) UnlikeNote(ctx context.Context, id string) (models.Note, error) {
	resp, err := s.adapter.UnlikeNote(ctx, id)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientNoteService.UnlikeNote").Str("note_id", id).Msg("error unliking note")
		return models.Note{}, mapAdapterError(err)
	}
	return resp.Note, nil
}

func (s *clientNoteService) DeleteNote(ctx context.Context, id string) error {
	if _, err := s.adapter.DeleteNote(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "*clientNoteService.DeleteNote").Str("note_id", id).Msg("error deleting note")
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientNoteService) ServerVersion(ctx context.Context) (models.VersionResponse, error) {
	version, err := s.adapter.GetVersion(ctx)
	if err != nil {
		return models.VersionResponse{}, mapAdapterError(err)
	}
	return version, nil
}
