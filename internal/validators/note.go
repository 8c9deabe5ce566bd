// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-board/models"
)

// Field names accepted by [NoteValidator].
const (
	FieldContent = "content"
	FieldAuthor  = "author"
	FieldNoteID  = "id"
)

// NoteValidator checks note creation requests and note identifiers.
//
// Supported values are models.CreateNoteRequest (and a pointer to it), which
// is checked for FieldContent and FieldAuthor, and a plain string, which is
// treated as a note id and checked for FieldNoteID.
type NoteValidator struct{}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateNoteRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateNoteRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCreateRequest(ctx, *value, fields...)
	case string:
		return v.validateNoteID(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateCreateRequest(_ context.Context, req models.CreateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldAuthor}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if strings.TrimSpace(req.Content) == "" {
				return ErrEmptyContent
			}
		case FieldAuthor:
			if strings.TrimSpace(req.Author) == "" {
				return ErrEmptyAuthor
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteID(_ context.Context, id string, fields ...string) error {
	for _, f := range fields {
		if f != FieldNoteID {
			return ErrUnknownField
		}
	}

	if strings.TrimSpace(id) == "" {
		return ErrInvalidNoteID
	}
	return nil
}
