// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// Note is a single short message posted to the public board.
//
// The identifier is serialised as "_id" so that browser clients written
// against the document-store representation keep working regardless of the
// storage backend in use.
type Note struct {
	// ID is the opaque store-assigned identifier. It never changes and is
	// never reused after deletion.
	ID string `json:"_id"`

	// Content is the message text. Never empty after trimming.
	Content string `json:"content"`

	// Author is the free-form name of whoever posted the note.
	Author string `json:"author"`

	// Likes is the current like counter. It never goes below zero.
	Likes int64 `json:"likes"`

	// CreatedAt is set once on creation and is the sort key of the feed.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed whenever the like counter changes.
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateNoteRequest is the body of POST /notes.
type CreateNoteRequest struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// ListNotesQuery holds the pagination parameters of GET /notes.
// Values below 1 are replaced by the service defaults.
type ListNotesQuery struct {
	Page  int
	Limit int
}

// Offset returns the number of notes to skip for the query.
// It assumes Page and Limit were already normalised. Pages too large to
// address saturate at math.MaxInt, which is past the end of any store.
func (q ListNotesQuery) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}
