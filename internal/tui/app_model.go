// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/service"
	"github.com/MKhiriev/go-notes-board/internal/store"
	"github.com/MKhiriev/go-notes-board/models"
)

const statusTTL = 2 * time.Second

type screen int

const (
	screenFeed screen = iota
	screenDetail
	screenCompose
	screenAbout
)

type appModel struct {
	ctx       context.Context
	notes     service.ClientNoteService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	currentScreen screen
	feed          feedModel
	compose       composeModel
	about         aboutModel

	// lastAuthor pre-fills the compose form.
	lastAuthor string

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	statusSeq int

	copyToClipboard func(string) error
	quitting        bool
}

func newAppModel(ctx context.Context, notes service.ClientNoteService, buildInfo models.AppBuildInfo, logger *logger.Logger) appModel {
	return appModel{
		ctx:             ctx,
		notes:           notes,
		buildInfo:       buildInfo,
		logger:          logger,
		currentScreen:   screenFeed,
		feed:            newFeedModel(),
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.feed.spinner.Tick, m.cmdLoadPage(1))
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.feed.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.feed.spinner, cmd = m.feed.spinner.Update(msg)
		return m, cmd

	case pageLoadedMsg:
		return m.onPageLoaded(msg)

	case noteCreatedMsg:
		m.compose.saving = false
		if msg.err != nil {
			m.compose.err = errorMessage(msg.err)
			return m, nil
		}
		m.lastAuthor = msg.note.Author
		m.currentScreen = screenFeed
		m.feed.idx = 0
		m.feed.loading = true
		var clearStatus tea.Cmd
		m, clearStatus = m.withStatus("Note created")
		return m, tea.Batch(clearStatus, m.cmdLoadPage(1))

	case noteUpdatedMsg:
		if msg.err != nil {
			return m.onNoteError(msg.err)
		}
		m.feed.replace(msg.note)
		return m, nil

	case noteDeletedMsg:
		if msg.err != nil {
			return m.onNoteError(msg.err)
		}
		m.currentScreen = screenFeed
		m.feed.loading = true
		var clearStatus tea.Cmd
		m, clearStatus = m.withStatus("Note deleted")
		return m, tea.Batch(clearStatus, m.cmdLoadPage(m.feed.pageNum))

	case versionLoadedMsg:
		m.about.loading = false
		m.about.server = msg.version
		m.about.err = errorMessage(msg.err)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.withError(msg.err.Error()), nil
		}
		return m.withStatus("Copied to clipboard")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.feed.status = ""
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.currentScreen == screenCompose {
			var cmd tea.Cmd
			m.compose, cmd = m.compose.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.forceQ) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.showError:
		return m.updateErrorOverlay(keyMsg)
	case m.showConfirm:
		return m.updateConfirm(keyMsg)
	}

	switch m.currentScreen {
	case screenCompose:
		return m.updateCompose(keyMsg)
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenAbout:
		if key.Matches(keyMsg, keys.esc) {
			m.currentScreen = screenFeed
		}
		return m, nil
	default:
		return m.updateFeed(keyMsg)
	}
}

func (m appModel) onPageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	m.feed.loading = false
	if msg.err != nil {
		m.logger.Err(msg.err).Str("func", "appModel.onPageLoaded").Msg("error loading page")
		return m.withError(errorMessage(msg.err)), nil
	}

	// The page may have emptied after a delete on the last page.
	if len(msg.page.Notes) == 0 && msg.page.TotalPages > 0 && msg.page.CurrentPage > msg.page.TotalPages {
		m.feed.loading = true
		return m, m.cmdLoadPage(msg.page.TotalPages)
	}

	m.feed.setPage(msg.page)
	return m, nil
}

// onNoteError shows err and reloads the page when the note is gone.
func (m appModel) onNoteError(err error) (tea.Model, tea.Cmd) {
	m = m.withError(errorMessage(err))
	if errors.Is(err, store.ErrNoteNotFound) {
		m.currentScreen = screenFeed
		m.feed.loading = true
		return m, m.cmdLoadPage(m.feed.pageNum)
	}
	return m, nil
}

func (m appModel) withError(message string) appModel {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: message}
	return m
}

func (m appModel) updateErrorOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter, keys.esc) {
		m.showError = false
	}
	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		id := m.pendingDelete
		m.pendingDelete = ""
		return m, m.cmdDelete(id)
	case key.Matches(msg, keys.no, keys.esc):
		m.showConfirm = false
		m.pendingDelete = ""
	}
	return m, nil
}

func (m appModel) updateFeed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.feed.move(-1)
	case key.Matches(msg, keys.down):
		m.feed.move(1)
	case key.Matches(msg, keys.nextPage):
		if m.feed.hasNext() && !m.feed.loading {
			m.feed.loading = true
			m.feed.idx = 0
			return m, m.cmdLoadPage(m.feed.pageNum + 1)
		}
	case key.Matches(msg, keys.prevPage):
		if m.feed.hasPrev() && !m.feed.loading {
			m.feed.loading = true
			m.feed.idx = 0
			return m, m.cmdLoadPage(m.feed.pageNum - 1)
		}
	case key.Matches(msg, keys.refresh):
		m.feed.loading = true
		return m, m.cmdLoadPage(m.feed.pageNum)
	case key.Matches(msg, keys.newNote):
		m.compose = newComposeModel(m.lastAuthor)
		m.currentScreen = screenCompose
		return m, nil
	case key.Matches(msg, keys.about):
		m.currentScreen = screenAbout
		m.about = aboutModel{loading: true}
		return m, m.cmdLoadVersion()
	case key.Matches(msg, keys.enter):
		if _, ok := m.feed.current(); ok {
			m.currentScreen = screenDetail
		}
	default:
		return m.updateNoteAction(msg)
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc, keys.quit) {
		m.currentScreen = screenFeed
		return m, nil
	}
	return m.updateNoteAction(msg)
}

// updateNoteAction handles the keys acting on the selected note.
func (m appModel) updateNoteAction(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note, ok := m.feed.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.like):
		return m, m.cmdLike(note.ID)
	case key.Matches(msg, keys.unlike):
		return m, m.cmdUnlike(note.ID)
	case key.Matches(msg, keys.delete):
		m.showConfirm = true
		m.pendingDelete = note.ID
		m.confirm = confirmModel{message: note.Content}
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(note.Content)
	}
	return m, nil
}

func (m appModel) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.compose.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenFeed
		return m, nil
	case key.Matches(msg, keys.submit),
		key.Matches(msg, keys.enter) && m.compose.focus == composeFocusAuthor:
		m.compose.saving = true
		m.compose.err = ""
		content, author := m.compose.values()
		return m, m.cmdCreate(content, author)
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

// withStatus shows status on the feed until statusTTL passes or a newer
// status replaces it.
func (m appModel) withStatus(status string) (appModel, tea.Cmd) {
	m.feed.status = status
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var view string
	switch m.currentScreen {
	case screenCompose:
		view = m.compose.View()
	case screenAbout:
		view = m.about.View(m.buildInfo)
	case screenDetail:
		if note, ok := m.feed.current(); ok {
			view = renderNoteDetail(note)
		} else {
			view = m.feed.View()
		}
	default:
		view = m.feed.View()
	}

	switch {
	case m.showError:
		return lipgloss.JoinVertical(lipgloss.Left, view, m.errorOverlay.View())
	case m.showConfirm:
		return lipgloss.JoinVertical(lipgloss.Left, view, m.confirm.View())
	}
	return view
}

// ── commands ────────────────────────────────────────────────────────────────

func (m appModel) cmdLoadPage(page int) tea.Cmd {
	return func() tea.Msg {
		notesPage, err := m.notes.ListNotes(m.ctx, page)
		return pageLoadedMsg{page: notesPage, err: err}
	}
}

func (m appModel) cmdCreate(content, author string) tea.Cmd {
	return func() tea.Msg {
		note, err := m.notes.CreateNote(m.ctx, content, author)
		return noteCreatedMsg{note: note, err: err}
	}
}

func (m appModel) cmdLike(id string) tea.Cmd {
	return func() tea.Msg {
		note, err := m.notes.LikeNote(m.ctx, id)
		return noteUpdatedMsg{note: note, err: err}
	}
}

func (m appModel) cmdUnlike(id string) tea.Cmd {
	return func() tea.Msg {
		note, err := m.notes.UnlikeNote(m.ctx, id)
		return noteUpdatedMsg{note: note, err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	return func() tea.Msg {
		return noteDeletedMsg{id: id, err: m.notes.DeleteNote(m.ctx, id)}
	}
}

func (m appModel) cmdLoadVersion() tea.Cmd {
	return func() tea.Msg {
		version, err := m.notes.ServerVersion(m.ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := m.copyToClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
