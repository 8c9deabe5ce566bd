// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-board/internal/app"
	"github.com/MKhiriev/go-notes-board/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNoteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&req); err != nil {
		h.writeError(w, r, app.MsgPrefixCreateNote, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), req)
	if err != nil {
		h.writeError(w, r, app.MsgPrefixCreateNote, err)
		return
	}

	writeJSON(w, r, models.NoteResponse{Message: app.MsgNoteCreated, Note: note}, http.StatusCreated)
}

// listNotes serves GET /notes?page=&limit=. Missing or non-numeric values
// are passed on as zero and replaced by defaults in the service.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	query := models.ListNotesQuery{
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}

	page, err := h.services.NoteService.ListNotes(r.Context(), query)
	if err != nil {
		h.writeError(w, r, app.MsgPrefixListNotes, err)
		return
	}

	writeJSON(w, r, page, http.StatusOK)
}

func queryInt(r *http.Request, key string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return value
}

func (h *Handler) likeNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.services.NoteService.LikeNote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, app.MsgPrefixLikeNote, err)
		return
	}

	writeJSON(w, r, models.NoteResponse{Message: app.MsgNoteLiked, Note: note}, http.StatusOK)
}

func (h *Handler) unlikeNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.services.NoteService.UnlikeNote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, app.MsgPrefixUnlikeNote, err)
		return
	}

	writeJSON(w, r, models.NoteResponse{Message: app.MsgNoteUnliked, Note: note}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.services.NoteService.DeleteNote(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, app.MsgPrefixDeleteNote, err)
		return
	}

	writeMessage(w, r, app.MsgNoteDeleted, http.StatusOK)
}
