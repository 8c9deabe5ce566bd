// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the HTTP handlers and the
// terminal client.
//
// Every response body of the notes API carries a human-readable "message".
// The server writes these constants and the client matches on them, so the
// wording lives in one place.
package app

const (
	// MsgNoteCreated is returned together with the new note by POST /notes.
	MsgNoteCreated = "Note created successfully"

	// MsgNoteLiked is returned together with the note by PATCH /notes/{id}/like.
	MsgNoteLiked = "Note liked successfully"

	// MsgNoteUnliked is returned together with the note by PATCH /notes/{id}/unlike.
	MsgNoteUnliked = "Note unliked successfully"

	// MsgNoteDeleted is returned by DELETE /notes/{id}.
	MsgNoteDeleted = "Note deleted successfully"

	// MsgNoteNotFound is returned when the addressed note does not exist.
	MsgNoteNotFound = "Note not found"

	// MsgSomethingWentWrong is the catch-all body for panics and unmapped
	// failures.
	MsgSomethingWentWrong = "Something went wrong!"

	// MsgInvalidJSON is the cause reported for request bodies that cannot be
	// decoded.
	MsgInvalidJSON = "invalid JSON body"

	// MsgInternalServerError is the cause reported for storage failures.
	// Backend details stay in the server log.
	MsgInternalServerError = "internal server error"

	// MsgUnauthorized is returned when a bearer token is present but invalid.
	MsgUnauthorized = "invalid or expired token"

	// MsgRouteNotFound is returned for unknown paths.
	MsgRouteNotFound = "Route not found"

	// MsgMethodNotAllowed is returned for known paths with a wrong method.
	MsgMethodNotAllowed = "Method not allowed"
)

// Prefixes of operation failure messages, followed by ": " and the cause,
// e.g. "Error creating note: content is required".
const (
	MsgPrefixCreateNote = "Error creating note"
	MsgPrefixListNotes  = "Error fetching notes"
	MsgPrefixLikeNote   = "Error liking note"
	MsgPrefixUnlikeNote = "Error unliking note"
	MsgPrefixDeleteNote = "Error deleting note"
)

// FailureMessage joins an operation prefix and its cause.
func FailureMessage(prefix, cause string) string {
	return prefix + ": " + cause
}
