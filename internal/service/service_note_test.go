// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-board/internal/config"
	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/mock"
	"github.com/MKhiriev/go-notes-board/internal/store"
	"github.com/MKhiriev/go-notes-board/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestNoteService(t *testing.T) (*noteService, *mock.MockNoteRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)

	cfg := config.App{DefaultPageSize: 10, MaxPageSize: 100}
	svc := NewNoteService(repo, cfg, logger.Nop()).(*noteService)
	return svc, repo
}

func sampleNotes(n int) []models.Note {
	notes := make([]models.Note, n)
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := range notes {
		notes[i] = models.Note{ID: string(rune('a' + i)), Content: "c", Author: "a", CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
	}
	return notes
}

// ─────────────────────────────────────────────
// CreateNote
// ─────────────────────────────────────────────

func TestNoteService_CreateNote_TrimsFields(t *testing.T) {
	svc, repo := newTestNoteService(t)
	want := models.Note{ID: "n1", Content: "hello", Author: "ann"}

	repo.EXPECT().Create(gomock.Any(), "hello", "ann").Return(want, nil)

	got, err := svc.CreateNote(context.Background(), models.CreateNoteRequest{Content: "  hello\n", Author: "\tann "})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteService_CreateNote_StorageError(t *testing.T) {
	svc, repo := newTestNoteService(t)

	repo.EXPECT().Create(gomock.Any(), "hello", "ann").Return(models.Note{}, store.ErrStorage)

	_, err := svc.CreateNote(context.Background(), models.CreateNoteRequest{Content: "hello", Author: "ann"})
	assert.ErrorIs(t, err, store.ErrStorage)
}

// ─────────────────────────────────────────────
// ListNotes
// ─────────────────────────────────────────────

func TestNoteService_ListNotes(t *testing.T) {
	tests := []struct {
		name       string
		query      models.ListNotesQuery
		total      int64
		wantOffset int
		wantLimit  int
		wantPage   int
		wantPages  int
		skipList   bool
	}{
		{name: "first page", query: models.ListNotesQuery{Page: 1, Limit: 10}, total: 25, wantOffset: 0, wantLimit: 10, wantPage: 1, wantPages: 3},
		{name: "third page", query: models.ListNotesQuery{Page: 3, Limit: 10}, total: 25, wantOffset: 20, wantLimit: 10, wantPage: 3, wantPages: 3},
		{name: "zero page becomes one", query: models.ListNotesQuery{Page: 0, Limit: 5}, total: 5, wantOffset: 0, wantLimit: 5, wantPage: 1, wantPages: 1},
		{name: "negative page becomes one", query: models.ListNotesQuery{Page: -4, Limit: 5}, total: 6, wantOffset: 0, wantLimit: 5, wantPage: 1, wantPages: 2},
		{name: "zero limit uses default", query: models.ListNotesQuery{Page: 2}, total: 11, wantOffset: 10, wantLimit: 10, wantPage: 2, wantPages: 2},
		{name: "limit capped", query: models.ListNotesQuery{Page: 1, Limit: 1000}, total: 150, wantOffset: 0, wantLimit: 100, wantPage: 1, wantPages: 2},
		{name: "empty store", query: models.ListNotesQuery{Page: 1, Limit: 10}, total: 0, wantLimit: 10, wantPage: 1, wantPages: 0, skipList: true},
		{name: "page past the end", query: models.ListNotesQuery{Page: 9, Limit: 10}, total: 3, wantLimit: 10, wantPage: 9, wantPages: 1, skipList: true},
		{name: "largest page", query: models.ListNotesQuery{Page: math.MaxInt, Limit: 2}, total: 1, wantLimit: 2, wantPage: math.MaxInt, wantPages: 1, skipList: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestNoteService(t)

			repo.EXPECT().Count(gomock.Any()).Return(tt.total, nil)
			if !tt.skipList {
				repo.EXPECT().List(gomock.Any(), tt.wantOffset, tt.wantLimit).Return(nil, nil)
			}

			page, err := svc.ListNotes(context.Background(), tt.query)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPage, page.CurrentPage)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.total, page.TotalNotes)
			assert.NotNil(t, page.Notes)
		})
	}
}

func TestNoteService_ListNotes_ReturnsItems(t *testing.T) {
	svc, repo := newTestNoteService(t)
	notes := sampleNotes(3)

	repo.EXPECT().List(gomock.Any(), 0, 10).Return(notes, nil)
	repo.EXPECT().Count(gomock.Any()).Return(int64(3), nil)

	page, err := svc.ListNotes(context.Background(), models.ListNotesQuery{})
	require.NoError(t, err)
	assert.Equal(t, notes, page.Notes)
}

func TestNoteService_ListNotes_Errors(t *testing.T) {
	t.Run("list fails", func(t *testing.T) {
		svc, repo := newTestNoteService(t)
		repo.EXPECT().Count(gomock.Any()).Return(int64(5), nil)
		repo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrStorageUnavailable)

		_, err := svc.ListNotes(context.Background(), models.ListNotesQuery{Page: 1, Limit: 10})
		assert.ErrorIs(t, err, store.ErrStorage)
	})

	t.Run("count fails", func(t *testing.T) {
		svc, repo := newTestNoteService(t)
		repo.EXPECT().Count(gomock.Any()).Return(int64(0), errors.Join(store.ErrStorage, errors.New("timeout")))

		_, err := svc.ListNotes(context.Background(), models.ListNotesQuery{Page: 1, Limit: 10})
		assert.ErrorIs(t, err, store.ErrStorage)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(1, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 0, totalPages(5, 0))
}

// ─────────────────────────────────────────────
// Likes / Delete
// ─────────────────────────────────────────────

func TestNoteService_LikeAndUnlike(t *testing.T) {
	svc, repo := newTestNoteService(t)

	repo.EXPECT().IncrementLikes(gomock.Any(), "n1").Return(models.Note{ID: "n1", Likes: 1}, nil)
	repo.EXPECT().DecrementLikes(gomock.Any(), "n1").Return(models.Note{ID: "n1", Likes: 0}, nil)

	liked, err := svc.LikeNote(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), liked.Likes)

	unliked, err := svc.UnlikeNote(context.Background(), "n1")
	require.NoError(t, err)
	assert.Zero(t, unliked.Likes)
}

func TestNoteService_NotFoundPropagates(t *testing.T) {
	svc, repo := newTestNoteService(t)

	repo.EXPECT().IncrementLikes(gomock.Any(), "x").Return(models.Note{}, store.ErrNoteNotFound)
	repo.EXPECT().DecrementLikes(gomock.Any(), "x").Return(models.Note{}, store.ErrNoteNotFound)
	repo.EXPECT().Delete(gomock.Any(), "x").Return(store.ErrNoteNotFound)

	_, err := svc.LikeNote(context.Background(), "x")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)

	_, err = svc.UnlikeNote(context.Background(), "x")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)

	assert.ErrorIs(t, svc.DeleteNote(context.Background(), "x"), store.ErrNoteNotFound)
}

func TestNoteService_DeleteNote(t *testing.T) {
	svc, repo := newTestNoteService(t)

	repo.EXPECT().Delete(gomock.Any(), "n1").Return(nil)

	assert.NoError(t, svc.DeleteNote(context.Background(), "n1"))
}
