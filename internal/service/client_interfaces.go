// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-board/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientNoteService defines the client-side contract used by the terminal UI.
// Every call goes to the server through the notes adapter; errors are mapped
// back to the same sentinels the server uses (ErrValidation,
// store.ErrNoteNotFound, store.ErrStorage) so the UI can branch on them.
type ClientNoteService interface {
	// ListNotes fetches one feed page using the configured page size.
	ListNotes(ctx context.Context, page int) (models.NotesPage, error)

	// CreateNote validates the fields locally and posts a new note.
	CreateNote(ctx context.Context, content, author string) (models.Note, error)

	// LikeNote adds one like and returns the updated note.
	LikeNote(ctx context.Context, id string) (models.Note, error)

	// UnlikeNote removes one like and returns the updated note.
	UnlikeNote(ctx context.Context, id string) (models.Note, error)

	// DeleteNote removes a note permanently.
	DeleteNote(ctx context.Context, id string) error

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (models.VersionResponse, error)
}
