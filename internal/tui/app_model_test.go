// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-board/internal/adapter"
	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/mock"
	"github.com/MKhiriev/go-notes-board/internal/service"
	"github.com/MKhiriev/go-notes-board/internal/store"
	"github.com/MKhiriev/go-notes-board/internal/validators"
	"github.com/MKhiriev/go-notes-board/models"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

func newTestModel(t *testing.T) (appModel, *mock.MockClientNoteService) {
	t.Helper()

	notes := mock.NewMockClientNoteService(gomock.NewController(t))
	m := newAppModel(context.Background(), notes, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	return m, notes
}

func testPage(pageNum, totalPages int, contents ...string) models.NotesPage {
	page := models.NotesPage{CurrentPage: pageNum, TotalPages: totalPages, Notes: []models.Note{}}
	for i, content := range contents {
		page.Notes = append(page.Notes, models.Note{ID: fmt.Sprintf("n%d", i), Content: content, Author: "ann"})
	}
	page.TotalNotes = int64(len(contents))
	return page
}

// loaded returns m with page already shown.
func loaded(t *testing.T, m appModel, page models.NotesPage) appModel {
	t.Helper()
	next, _ := m.Update(pageLoadedMsg{page: page})
	return next.(appModel)
}

func press(t *testing.T, m appModel, keys string) (appModel, tea.Cmd) {
	t.Helper()

	var msg tea.KeyMsg
	switch keys {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		msg = tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}

	next, cmd := m.Update(msg)
	return next.(appModel), cmd
}

// run executes cmd and feeds its message back into m.
func run(t *testing.T, m appModel, cmd tea.Cmd) (appModel, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	next, nextCmd := m.Update(cmd())
	return next.(appModel), nextCmd
}

// ─────────────────────────────────────────────
// feed
// ─────────────────────────────────────────────

func TestAppModel_LoadsFirstPage(t *testing.T) {
	m, notes := newTestModel(t)
	notes.EXPECT().ListNotes(gomock.Any(), 1).Return(testPage(1, 1, "hello", "world"), nil)

	m, _ = run(t, m, m.cmdLoadPage(1))

	assert.False(t, m.feed.loading)
	assert.Len(t, m.feed.page.Notes, 2)
	assert.Contains(t, m.View(), "hello")
	assert.Contains(t, m.View(), "Page 1 of 1")
}

func TestAppModel_EmptyFeed(t *testing.T) {
	m, _ := newTestModel(t)
	m = loaded(t, m, testPage(1, 0))

	assert.Contains(t, m.View(), "No notes yet")
}

func TestAppModel_LoadError(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(pageLoadedMsg{err: errors.New("dial tcp 127.0.0.1:5000: connection refused")})
	m = next.(appModel)

	require.True(t, m.showError)
	assert.Equal(t, "Server is unreachable", m.errorOverlay.message)

	m, _ = press(t, m, "esc")
	assert.False(t, m.showError)
}

func TestAppModel_CursorAndPaging(t *testing.T) {
	m, notes := newTestModel(t)
	m = loaded(t, m, testPage(1, 2, "a", "b"))

	m, _ = press(t, m, "down")
	assert.Equal(t, 1, m.feed.idx)
	m, _ = press(t, m, "down")
	assert.Equal(t, 1, m.feed.idx, "cursor stays on the last note")
	m, _ = press(t, m, "up")
	assert.Equal(t, 0, m.feed.idx)

	notes.EXPECT().ListNotes(gomock.Any(), 2).Return(testPage(2, 2, "c"), nil)
	m, cmd := press(t, m, "right")
	require.True(t, m.feed.loading)
	m, _ = run(t, m, cmd)
	assert.Equal(t, 2, m.feed.pageNum)

	_, cmd = press(t, m, "right")
	assert.Nil(t, cmd, "no page after the last one")

	notes.EXPECT().ListNotes(gomock.Any(), 1).Return(testPage(1, 2, "a", "b"), nil)
	m, cmd = press(t, m, "left")
	m, _ = run(t, m, cmd)
	assert.Equal(t, 1, m.feed.pageNum)
}

func TestAppModel_EmptyPageAfterDeleteLoadsLastPage(t *testing.T) {
	m, notes := newTestModel(t)
	notes.EXPECT().ListNotes(gomock.Any(), 1).Return(testPage(1, 1, "a"), nil)

	next, cmd := m.Update(pageLoadedMsg{page: models.NotesPage{Notes: []models.Note{}, CurrentPage: 2, TotalPages: 1, TotalNotes: 1}})
	m = next.(appModel)
	require.True(t, m.feed.loading)

	m, _ = run(t, m, cmd)
	assert.Equal(t, 1, m.feed.pageNum)
	assert.Len(t, m.feed.page.Notes, 1)
}

// ─────────────────────────────────────────────
// note actions
// ─────────────────────────────────────────────

func TestAppModel_LikeAndUnlike(t *testing.T) {
	m, notes := newTestModel(t)
	m = loaded(t, m, testPage(1, 1, "a"))

	notes.EXPECT().LikeNote(gomock.Any(), "n0").Return(models.Note{ID: "n0", Content: "a", Author: "ann", Likes: 1}, nil)
	m, cmd := press(t, m, "l")
	m, _ = run(t, m, cmd)
	assert.Equal(t, int64(1), m.feed.page.Notes[0].Likes)

	notes.EXPECT().UnlikeNote(gomock.Any(), "n0").Return(models.Note{ID: "n0", Content: "a", Author: "ann"}, nil)
	m, cmd = press(t, m, "u")
	m, _ = run(t, m, cmd)
	assert.Zero(t, m.feed.page.Notes[0].Likes)
}

func TestAppModel_LikeMissingNoteReloads(t *testing.T) {
	m, notes := newTestModel(t)
	m = loaded(t, m, testPage(1, 1, "a"))

	notes.EXPECT().LikeNote(gomock.Any(), "n0").Return(models.Note{}, fmt.Errorf("%w: gone", store.ErrNoteNotFound))
	notes.EXPECT().ListNotes(gomock.Any(), 1).Return(testPage(1, 0), nil)

	m, cmd := press(t, m, "l")
	m, cmd = run(t, m, cmd)
	require.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "Note not found")

	m, _ = run(t, m, cmd)
	assert.Empty(t, m.feed.page.Notes)
}

func TestAppModel_DeleteWithConfirm(t *testing.T) {
	m, notes := newTestModel(t)
	m = loaded(t, m, testPage(1, 1, "a", "b"))
	m, _ = press(t, m, "down")

	m, cmd := press(t, m, "d")
	assert.Nil(t, cmd)
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), `Delete "b"?`)

	m, _ = press(t, m, "n")
	assert.False(t, m.showConfirm)

	m, _ = press(t, m, "d")
	notes.EXPECT().DeleteNote(gomock.Any(), "n1").Return(nil)
	notes.EXPECT().ListNotes(gomock.Any(), 1).Return(testPage(1, 1, "a"), nil)

	m, cmd = press(t, m, "y")
	m, cmd = run(t, m, cmd)
	assert.Equal(t, "Note deleted", m.feed.status)

	// Batch of the status timer and the reload; only the reload is run.
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)
	m, _ = run(t, m, batch[1])
	assert.Len(t, m.feed.page.Notes, 1)
	assert.Equal(t, 0, m.feed.idx)
}

func TestAppModel_Copy(t *testing.T) {
	m, _ := newTestModel(t)
	m = loaded(t, m, testPage(1, 1, "copy me"))

	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	m, cmd := press(t, m, "c")
	m, _ = run(t, m, cmd)
	assert.Equal(t, "copy me", copied)
	assert.Equal(t, "Copied to clipboard", m.feed.status)

	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }
	m, cmd = press(t, m, "c")
	m, _ = run(t, m, cmd)
	require.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "no clipboard")
}

func TestAppModel_StatusClearsOnlyLatest(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = m.withStatus("first")
	old := m.statusSeq
	m, _ = m.withStatus("second")

	next, _ := m.Update(clearStatusMsg{seq: old})
	m = next.(appModel)
	assert.Equal(t, "second", m.feed.status)

	next, _ = m.Update(clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, next.(appModel).feed.status)
}

func TestAppModel_DetailScreen(t *testing.T) {
	m, _ := newTestModel(t)
	m = loaded(t, m, testPage(1, 1, "line one\nline two"))

	m, _ = press(t, m, "enter")
	require.Equal(t, screenDetail, m.currentScreen)
	assert.Contains(t, m.View(), "line two")
	assert.Contains(t, m.View(), "ID:      n0")

	m, _ = press(t, m, "esc")
	assert.Equal(t, screenFeed, m.currentScreen)
}

// ─────────────────────────────────────────────
// compose
// ─────────────────────────────────────────────

func TestAppModel_ComposeAndPost(t *testing.T) {
	m, notes := newTestModel(t)
	m = loaded(t, m, testPage(1, 0))

	m, _ = press(t, m, "n")
	require.Equal(t, screenCompose, m.currentScreen)

	m, _ = press(t, m, "hi")
	m, _ = press(t, m, "tab")
	m, _ = press(t, m, "bob")

	content, author := m.compose.values()
	assert.Equal(t, "hi", content)
	assert.Equal(t, "bob", author)
	assert.True(t, m.compose.ready())

	notes.EXPECT().CreateNote(gomock.Any(), "hi", "bob").Return(models.Note{ID: "n9", Content: "hi", Author: "bob"}, nil)
	m, cmd := press(t, m, "enter")
	require.True(t, m.compose.saving)

	m, _ = run(t, m, cmd)
	assert.Equal(t, screenFeed, m.currentScreen)
	assert.Equal(t, "Note created", m.feed.status)
	assert.Equal(t, "bob", m.lastAuthor)

	m, _ = press(t, m, "n")
	_, author = m.compose.values()
	assert.Equal(t, "bob", author, "author is remembered")
}

func TestAppModel_ComposeValidationError(t *testing.T) {
	m, notes := newTestModel(t)
	m, _ = press(t, m, "n")

	notes.EXPECT().CreateNote(gomock.Any(), "", "").
		Return(models.Note{}, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrEmptyContent))

	m, cmd := press(t, m, "ctrl+s")
	m, _ = run(t, m, cmd)

	assert.Equal(t, screenCompose, m.currentScreen)
	assert.False(t, m.compose.saving)
	assert.Equal(t, "Content is required", m.compose.err)

	m, _ = press(t, m, "esc")
	assert.Equal(t, screenFeed, m.currentScreen)
}

func TestAppModel_QKeyInComposeIsText(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, "n")

	m, _ = press(t, m, "q")
	content, _ := m.compose.values()
	assert.Equal(t, "q", content)
	assert.False(t, m.quitting)
}

// ─────────────────────────────────────────────
// about / quit
// ─────────────────────────────────────────────

func TestAppModel_About(t *testing.T) {
	m, notes := newTestModel(t)
	notes.EXPECT().ServerVersion(gomock.Any()).Return(models.VersionResponse{Version: "2.0.0"}, nil)

	m, cmd := press(t, m, "v")
	require.Equal(t, screenAbout, m.currentScreen)
	assert.Contains(t, m.View(), "Loading...")

	m, _ = run(t, m, cmd)
	view := m.View()
	assert.Contains(t, view, "2.0.0")
	assert.Contains(t, view, "1.0.0")
}

func TestAppModel_AboutServerError(t *testing.T) {
	m, notes := newTestModel(t)
	notes.EXPECT().ServerVersion(gomock.Any()).Return(models.VersionResponse{}, adapter.NewResponseError(500, "Something went wrong!"))

	m, cmd := press(t, m, "v")
	m, _ = run(t, m, cmd)

	assert.Equal(t, "Something went wrong!", m.about.err)
}

func TestAppModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestAppModel_InitLoadsFeed(t *testing.T) {
	m, _ := newTestModel(t)
	assert.NotNil(t, m.Init())
	assert.True(t, m.feed.loading)
}
