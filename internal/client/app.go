// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/service"
)

var errNilUI = errors.New("ui is nil")

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNilUI
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run probes the server once so a wrong address shows up in the log, then
// hands control to the UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	if a.services != nil && a.services.NoteService != nil {
		version, err := a.services.NoteService.ServerVersion(ctx)
		if err != nil {
			a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("server version is unavailable")
		} else {
			a.logger.Info().Str("server_version", version.Version).Msg("connected to server")
		}
	}

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
