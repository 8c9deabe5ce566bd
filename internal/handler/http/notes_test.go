// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-board/internal/app"
	"github.com/MKhiriev/go-notes-board/internal/mock"
	"github.com/MKhiriev/go-notes-board/internal/service"
	"github.com/MKhiriev/go-notes-board/internal/store"
	"github.com/MKhiriev/go-notes-board/internal/validators"
	"github.com/MKhiriev/go-notes-board/models"
)

var testNote = models.Note{
	ID:        "n1",
	Content:   "hello",
	Author:    "ann",
	Likes:     3,
	CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
}

func serve(h *Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ── createNote ──────────────────────────────────────────────────────────────

func TestCreateNote(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setup       func(m *noteServiceExpect)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "created",
			body: `{"content":"hello","author":"ann"}`,
			setup: func(m *noteServiceExpect) {
				m.create(models.CreateNoteRequest{Content: "hello", Author: "ann"}, testNote, nil)
			},
			wantStatus:  http.StatusCreated,
			wantMessage: app.MsgNoteCreated,
		},
		{
			name:        "malformed json",
			body:        `{"content":`,
			setup:       func(*noteServiceExpect) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Error creating note: invalid JSON body",
		},
		{
			name: "empty content",
			body: `{"content":"","author":"ann"}`,
			setup: func(m *noteServiceExpect) {
				m.create(models.CreateNoteRequest{Author: "ann"}, models.Note{}, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrEmptyContent))
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Error creating note: content is required",
		},
		{
			name: "storage failure hides details",
			body: `{"content":"hello","author":"ann"}`,
			setup: func(m *noteServiceExpect) {
				m.create(models.CreateNoteRequest{Content: "hello", Author: "ann"}, models.Note{}, fmt.Errorf("%w: dial tcp 10.0.0.1", store.ErrStorage))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error creating note: internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notes, _ := newMockedHandler(t)
			tt.setup(&noteServiceExpect{m: notes})

			rec := serve(h, http.MethodPost, "/notes", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMessage, decode[models.NoteResponse](t, rec.Body.Bytes()).Message)
		})
	}
}

func TestCreateNote_BodyTooLarge(t *testing.T) {
	h, _, _ := newMockedHandler(t)

	body := `{"content":"` + strings.Repeat("a", maxRequestBodySize) + `","author":"ann"}`
	rec := serve(h, http.MethodPost, "/notes", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── listNotes ───────────────────────────────────────────────────────────────

func TestListNotes_PassesQuery(t *testing.T) {
	tests := []struct {
		target string
		want   models.ListNotesQuery
	}{
		{target: "/notes", want: models.ListNotesQuery{}},
		{target: "/notes?page=3&limit=20", want: models.ListNotesQuery{Page: 3, Limit: 20}},
		{target: "/notes?page=x&limit=", want: models.ListNotesQuery{}},
		{target: "/notes?page=-1", want: models.ListNotesQuery{Page: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			h, notes, _ := newMockedHandler(t)
			notes.EXPECT().ListNotes(gomock.Any(), tt.want).
				Return(models.NotesPage{Notes: []models.Note{testNote}, CurrentPage: 1, TotalPages: 1, TotalNotes: 1}, nil)

			rec := serve(h, http.MethodGet, tt.target, "")

			require.Equal(t, http.StatusOK, rec.Code)
			page := decode[models.NotesPage](t, rec.Body.Bytes())
			assert.Equal(t, []models.Note{testNote}, page.Notes)
		})
	}
}

func TestListNotes_StorageError(t *testing.T) {
	h, notes, _ := newMockedHandler(t)
	notes.EXPECT().ListNotes(gomock.Any(), gomock.Any()).Return(models.NotesPage{}, store.ErrStorageUnavailable)

	rec := serve(h, http.MethodGet, "/notes", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error fetching notes: internal server error", decode[models.MessageResponse](t, rec.Body.Bytes()).Message)
}

// ── like / unlike / delete ──────────────────────────────────────────────────

func TestLikeNote(t *testing.T) {
	h, notes, _ := newMockedHandler(t)
	notes.EXPECT().LikeNote(gomock.Any(), "n1").Return(testNote, nil)

	rec := serve(h, http.MethodPatch, "/notes/n1/like", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[models.NoteResponse](t, rec.Body.Bytes())
	assert.Equal(t, app.MsgNoteLiked, resp.Message)
	assert.Equal(t, testNote, resp.Note)
}

func TestUnlikeNote(t *testing.T) {
	h, notes, _ := newMockedHandler(t)
	notes.EXPECT().UnlikeNote(gomock.Any(), "n1").Return(testNote, nil)

	rec := serve(h, http.MethodPatch, "/notes/n1/unlike", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgNoteUnliked, decode[models.NoteResponse](t, rec.Body.Bytes()).Message)
}

func TestNoteMutations_NotFound(t *testing.T) {
	h, notes, _ := newMockedHandler(t)
	notFound := fmt.Errorf("like note n1: %w", store.ErrNoteNotFound)
	notes.EXPECT().LikeNote(gomock.Any(), "n1").Return(models.Note{}, notFound)
	notes.EXPECT().UnlikeNote(gomock.Any(), "n1").Return(models.Note{}, notFound)
	notes.EXPECT().DeleteNote(gomock.Any(), "n1").Return(notFound)

	for _, call := range []struct{ method, target string }{
		{http.MethodPatch, "/notes/n1/like"},
		{http.MethodPatch, "/notes/n1/unlike"},
		{http.MethodDelete, "/notes/n1"},
	} {
		rec := serve(h, call.method, call.target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, call.target)
		assert.Equal(t, app.MsgNoteNotFound, decode[models.MessageResponse](t, rec.Body.Bytes()).Message)
	}
}

func TestDeleteNote(t *testing.T) {
	h, notes, _ := newMockedHandler(t)
	notes.EXPECT().DeleteNote(gomock.Any(), "n1").Return(nil)

	rec := serve(h, http.MethodDelete, "/notes/n1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Note deleted successfully"}`, rec.Body.String())
}

func TestDeleteNote_UnexpectedError(t *testing.T) {
	h, notes, _ := newMockedHandler(t)
	notes.EXPECT().DeleteNote(gomock.Any(), "n1").Return(errors.New("boom"))

	rec := serve(h, http.MethodDelete, "/notes/n1", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error deleting note: internal server error", decode[models.MessageResponse](t, rec.Body.Bytes()).Message)
}

// ── version ─────────────────────────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	h, _, info := newMockedHandler(t)
	info.EXPECT().GetBuildInfo(gomock.Any()).Return(models.VersionResponse{Version: "2.0.0", Commit: "abc"})

	rec := serve(h, http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"2.0.0","commit":"abc"}`, rec.Body.String())
}

// noteServiceExpect keeps table setups short.
type noteServiceExpect struct {
	m *mock.MockNoteService
}

func (e *noteServiceExpect) create(req models.CreateNoteRequest, note models.Note, err error) {
	e.m.EXPECT().CreateNote(gomock.Any(), req).Return(note, err)
}
