// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the notes board server.
//
// The primary abstraction is [NotesAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPNotesAdapter]) built on resty.
//
// Non-2xx responses are turned into a [*ResponseError] carrying the status
// code and the "message" field of the body. It unwraps to one of the
// sentinels in errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound]
// for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_adapter_mock.go -package=mock

// NotesAdapter defines transport-agnostic communication with the notes
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type NotesAdapter interface {
	// ListNotes fetches one page of the feed. Page and limit are sent as
	// query parameters, non-positive values are omitted and left to the
	// server defaults.
	ListNotes(ctx context.Context, page, limit int) (models.NotesPage, error)

	// CreateNote posts a new note and returns the server envelope.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.NoteResponse, error)

	// LikeNote adds one like to the note with the given id.
	LikeNote(ctx context.Context, id string) (models.NoteResponse, error)

	// UnlikeNote removes one like from the note with the given id.
	UnlikeNote(ctx context.Context, id string) (models.NoteResponse, error)

	// DeleteNote removes the note with the given id.
	DeleteNote(ctx context.Context, id string) (models.MessageResponse, error)

	// GetVersion returns the server version information.
	GetVersion(ctx context.Context) (models.VersionResponse, error)
}
