// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-board/internal/store"
	"github.com/MKhiriev/go-notes-board/internal/validators"
	"github.com/MKhiriev/go-notes-board/models"
)

type noteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &noteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *noteValidationService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldContent, validators.FieldAuthor); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.CreateNote(ctx, req)
}

func (v *noteValidationService) ListNotes(ctx context.Context, query models.ListNotesQuery) (models.NotesPage, error) {
	return v.inner.ListNotes(ctx, query)
}

func (v *noteValidationService) LikeNote(ctx context.Context, id string) (models.Note, error) {
	id, err := v.validateID(ctx, id)
	if err != nil {
		return models.Note{}, err
	}
	return v.inner.LikeNote(ctx, id)
}

func (v *noteValidationService) UnlikeNote(ctx context.Context, id string) (models.Note, error) {
	id, err := v.validateID(ctx, id)
	if err != nil {
		return models.Note{}, err
	}
	return v.inner.UnlikeNote(ctx, id)
}

func (v *noteValidationService) DeleteNote(ctx context.Context, id string) error {
	id, err := v.validateID(ctx, id)
	if err != nil {
		return err
	}
	return v.inner.DeleteNote(ctx, id)
}

// validateID trims id. A blank id cannot address a note, so it is reported
// as not found rather than as a validation error.
func (v *noteValidationService) validateID(ctx context.Context, id string) (string, error) {
	if err := v.validator.Validate(ctx, id, validators.FieldNoteID); err != nil {
		return "", fmt.Errorf("%w: %w", store.ErrNoteNotFound, err)
	}
	return strings.TrimSpace(id), nil
}

func (v *noteValidationService) Wrap(wrapper NoteService) NoteService {
	v.inner = wrapper
	return v
}
