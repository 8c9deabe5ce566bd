// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-notes-board/models"
)

type pageLoadedMsg struct {
	page models.NotesPage
	err  error
}

type noteCreatedMsg struct {
	note models.Note
	err  error
}

// noteUpdatedMsg carries the result of a like or unlike.
type noteUpdatedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	id  string
	err error
}

type versionLoadedMsg struct {
	version models.VersionResponse
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
