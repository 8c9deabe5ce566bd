// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// several workers until their context is cancelled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// StatusReporter receives the outcome of health checks.
type StatusReporter interface {
	SetServing(serving bool)
}
