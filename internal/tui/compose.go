// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	composeFocusContent = iota
	composeFocusAuthor
)

type composeModel struct {
	content textarea.Model
	author  textinput.Model
	focus   int
	saving  bool
	err     string
}

func newComposeModel(author string) composeModel {
	content := textarea.New()
	content.Placeholder = "What's on your mind?"
	content.ShowLineNumbers = false
	content.SetWidth(feedContentWidth)
	content.SetHeight(5)
	content.Focus()

	authorInput := textinput.New()
	authorInput.Placeholder = "Your name"
	authorInput.CharLimit = 64
	authorInput.SetValue(author)

	return composeModel{content: content, author: authorInput}
}

func (m composeModel) values() (content, author string) {
	return m.content.Value(), m.author.Value()
}

// ready reports whether the form has something worth sending.
func (m composeModel) ready() bool {
	content, author := m.values()
	return strings.TrimSpace(content) != "" && strings.TrimSpace(author) != ""
}

func (m composeModel) toggleFocus() composeModel {
	if m.focus == composeFocusContent {
		m.focus = composeFocusAuthor
		m.content.Blur()
		m.author.Focus()
		return m
	}

	m.focus = composeFocusContent
	m.author.Blur()
	m.content.Focus()
	return m
}

func (m composeModel) Update(msg tea.Msg) (composeModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.tab) {
		return m.toggleFocus(), nil
	}

	var cmd tea.Cmd
	if m.focus == composeFocusContent {
		m.content, cmd = m.content.Update(msg)
	} else {
		m.author, cmd = m.author.Update(msg)
	}
	return m, cmd
}

func (m composeModel) View() string {
	var b strings.Builder

	b.WriteString("Content\n")
	b.WriteString(m.content.View())
	b.WriteString("\n\nAuthor\n")
	b.WriteString(m.author.View())
	b.WriteString("\n")

	if m.saving {
		b.WriteString("\nSaving...\n")
	}
	if m.err != "" {
		b.WriteString("\n" + errorStyle.Render(m.err) + "\n")
	}

	return renderPage("NEW NOTE", b.String(), "tab switch field  ctrl+s post  enter post (in author)  esc cancel")
}
