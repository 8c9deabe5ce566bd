// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/service"
)

const defaultHealthInterval = 15 * time.Second

type healthWorker struct {
	health   service.HealthService
	reporter StatusReporter
	interval time.Duration

	logger *logger.Logger
}

// NewHealthWorker returns a worker that checks the store every interval
// and forwards the result to reporter. The first check runs immediately.
func NewHealthWorker(health service.HealthService, reporter StatusReporter, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultHealthInterval
	}
	return &healthWorker{
		health:   health,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

func (w *healthWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("health worker started")
	defer w.logger.Info().Msg("health worker stopped")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	serving := w.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			next := w.check(ctx)
			if next != serving {
				w.logger.Info().Bool("serving", next).Msg("serving status changed")
			}
			serving = next
		}
	}
}

func (w *healthWorker) check(ctx context.Context) bool {
	checkCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	serving := w.health.Check(checkCtx) == nil
	w.reporter.SetServing(serving)
	return serving
}
