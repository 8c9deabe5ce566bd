// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when the addressed note does not exist,
	// including ids that are malformed for the active backend.
	ErrNoteNotFound = errors.New("note not found")

	// ErrStorage wraps every failure of the underlying backend.
	ErrStorage = errors.New("storage error")

	// ErrStorageUnavailable marks backend failures classified as transient
	// (lost connection, deadlock, busy database). It matches ErrStorage too.
	ErrStorageUnavailable = fmt.Errorf("%w: temporarily unavailable", ErrStorage)

	// ErrUnsupportedDriver is returned by [NewStorages] for unknown drivers.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level SQL operation errors, always wrapped together with ErrStorage.
var (
	// ErrBuildingSQLQuery is returned when constructing a query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan note rows")
)
