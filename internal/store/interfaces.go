// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists notes. It offers one [NoteRepository] contract and
// several backends (MongoDB, PostgreSQL, SQLite and in-memory) selected by
// [NewStorages].
package store

import (
	"context"

	"github.com/MKhiriev/go-notes-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_repository_mock.go -package=mock

// NoteRepository is the storage contract of the notes board.
//
// Every like adjustment is a single atomic update of one note. Inputs are
// expected to be validated and trimmed by the caller.
type NoteRepository interface {
	// Create stores a new note with zero likes and returns it with the
	// store-assigned id and timestamps.
	Create(ctx context.Context, content, author string) (models.Note, error)

	// List returns at most limit notes, skipping offset, newest first with
	// ties broken by id descending.
	List(ctx context.Context, offset, limit int) ([]models.Note, error)

	// Count returns the total number of stored notes.
	Count(ctx context.Context) (int64, error)

	// IncrementLikes atomically adds one like and returns the updated note.
	IncrementLikes(ctx context.Context, id string) (models.Note, error)

	// DecrementLikes atomically removes one like, never going below zero,
	// and returns the updated note.
	DecrementLikes(ctx context.Context, id string) (models.Note, error)

	// Delete permanently removes a note.
	Delete(ctx context.Context, id string) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a backend error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
