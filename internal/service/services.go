// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-notes-board/internal/config"
	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/store"
	"github.com/MKhiriev/go-notes-board/models"
)

type Services struct {
	NoteService    NoteService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	noteService := NewNoteValidationService().Wrap(
		NewNoteService(storages.NoteRepository, cfg, logger),
	)

	return &Services{
		NoteService:    noteService,
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.NoteRepository, logger),
	}, nil
}
