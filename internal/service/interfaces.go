// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the notes board: input
// validation, pagination and the mapping of store results to API models.
// Server-side services live in service_*.go, client-side services used by
// the terminal UI in client_*.go.
package service

import (
	"context"

	"github.com/MKhiriev/go-notes-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService is the server-side contract for working with notes.
type NoteService interface {
	// CreateNote trims and validates req and stores a new note with zero likes.
	// Returns ErrValidation (wrapping the field error) for empty content or author.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// ListNotes returns one page of the feed, newest first. A page past the
	// end yields an empty page, not an error.
	ListNotes(ctx context.Context, query models.ListNotesQuery) (models.NotesPage, error)

	// LikeNote adds one like. Returns store.ErrNoteNotFound for unknown ids.
	LikeNote(ctx context.Context, id string) (models.Note, error)

	// UnlikeNote removes one like, never going below zero.
	// Returns store.ErrNoteNotFound for unknown ids.
	UnlikeNote(ctx context.Context, id string) (models.Note, error)

	// DeleteNote permanently removes a note.
	// Returns store.ErrNoteNotFound for unknown ids.
	DeleteNote(ctx context.Context, id string) error
}

// AppInfoService exposes build and version information of the server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}

// HealthService reports whether the server can reach its storage.
type HealthService interface {
	Check(ctx context.Context) error
}
