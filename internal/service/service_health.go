// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/store"
)

type healthService struct {
	repo store.NoteRepository

	logger *logger.Logger
}

func NewHealthService(repo store.NoteRepository, logger *logger.Logger) HealthService {
	return &healthService{
		repo:   repo,
		logger: logger,
	}
}

// Check pings the store.
func (s *healthService) Check(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "*healthService.Check").Msg("storage is not reachable")
		return err
	}
	return nil
}
