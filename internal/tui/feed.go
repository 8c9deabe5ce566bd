// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-notes-board/models"
)

const feedContentWidth = 60

type feedModel struct {
	page    models.NotesPage
	pageNum int
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newFeedModel() feedModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return feedModel{spinner: s, pageNum: 1, loading: true}
}

func (m feedModel) current() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.page.Notes) {
		return models.Note{}, false
	}
	return m.page.Notes[m.idx], true
}

func (m *feedModel) setPage(page models.NotesPage) {
	m.page = page
	if page.CurrentPage > 0 {
		m.pageNum = page.CurrentPage
	}
	if m.idx >= len(page.Notes) {
		m.idx = len(page.Notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// replace swaps in an updated copy of a note shown on the page.
func (m *feedModel) replace(note models.Note) {
	for i := range m.page.Notes {
		if m.page.Notes[i].ID == note.ID {
			m.page.Notes[i] = note
			return
		}
	}
}

func (m *feedModel) move(delta int) {
	next := m.idx + delta
	if next < 0 || next >= len(m.page.Notes) {
		return
	}
	m.idx = next
}

func (m feedModel) hasNext() bool {
	return m.pageNum < m.page.TotalPages
}

func (m feedModel) hasPrev() bool {
	return m.pageNum > 1
}

func (m feedModel) View() string {
	title := "NOTES BOARD"
	if m.loading {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.page.Notes) == 0:
		b.WriteString("Loading...\n")
	case len(m.page.Notes) == 0:
		b.WriteString("No notes yet. Press n to write the first one.\n")
	default:
		for i, note := range m.page.Notes {
			cursor := "  "
			line := fmt.Sprintf("%s  %s  ♥ %d",
				fitText(oneLine(note.Content), feedContentWidth),
				authorStyle.Render("- "+note.Author),
				note.Likes,
			)
			if i == m.idx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nPage %d of %d, %d notes\n", m.pageNum, max(m.page.TotalPages, 1), m.page.TotalNotes))
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage(title, b.String(),
		"n new  enter open  l like  u unlike  d delete  c copy  ←/→ page  r refresh  v about  q quit")
}
