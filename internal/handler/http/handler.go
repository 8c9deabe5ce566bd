// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-notes-board/internal/config"
	"github.com/MKhiriev/go-notes-board/internal/identity"
	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/service"
)

// maxRequestBodySize bounds the JSON body of POST /notes.
const maxRequestBodySize = 1 << 20

type Handler struct {
	services *service.Services
	identity identity.Provider
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, identityProvider identity.Provider, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		identity: identityProvider,
		cfg:      cfg,
		logger:   logger,
	}
}
