// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotesPage is one page of the feed as returned by GET /notes.
type NotesPage struct {
	// Notes holds the page items, newest first. Never nil, so an empty
	// page is encoded as [] rather than null.
	Notes []Note `json:"notes"`

	// CurrentPage echoes the effective (normalised) page number.
	CurrentPage int `json:"currentPage"`

	// TotalPages is ceil(TotalNotes / limit).
	TotalPages int `json:"totalPages"`

	// TotalNotes is the number of notes stored at the time of the request.
	TotalNotes int64 `json:"totalNotes"`
}

// NoteResponse is the envelope used by create, like and unlike.
type NoteResponse struct {
	Message string `json:"message"`
	Note    Note   `json:"note"`
}

// MessageResponse carries a human readable outcome. It is the body of
// delete responses and of every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
