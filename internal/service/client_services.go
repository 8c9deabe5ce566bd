// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-notes-board/internal/adapter"
	"github.com/MKhiriev/go-notes-board/internal/config"
	"github.com/MKhiriev/go-notes-board/internal/logger"
)

type ClientServices struct {
	NoteService ClientNoteService
}

func NewClientServices(notesAdapter adapter.NotesAdapter, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		NoteService: NewClientNoteService(notesAdapter, cfg, logger),
	}
}
