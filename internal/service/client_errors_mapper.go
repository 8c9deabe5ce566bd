// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-board/internal/adapter"
	"github.com/MKhiriev/go-notes-board/internal/app"
	"github.com/MKhiriev/go-notes-board/internal/store"
	"github.com/MKhiriev/go-notes-board/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original adapter error stays in the chain, so the
// server message remains reachable via adapter.MessageFromError.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.MessageFromError(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case strings.HasSuffix(msg, validators.ErrEmptyContent.Error()):
			return fmt.Errorf("%w: %w: %w", ErrValidation, validators.ErrEmptyContent, err)
		case strings.HasSuffix(msg, validators.ErrEmptyAuthor.Error()):
			return fmt.Errorf("%w: %w: %w", ErrValidation, validators.ErrEmptyAuthor, err)
		}
		return fmt.Errorf("%w: %w", ErrValidation, err)

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgNoteNotFound {
			return fmt.Errorf("%w: %w", store.ErrNoteNotFound, err)
		}
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)

	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", store.ErrStorage, err)
	}

	return err
}
