// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes-board/internal/adapter"
	"github.com/MKhiriev/go-notes-board/internal/store"
	"github.com/MKhiriev/go-notes-board/internal/validators"
)

var ErrNoServices = errors.New("client services are not configured")

// errorMessage turns a client service error into a line for the user.
// Server supplied messages are shown as they are.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, validators.ErrEmptyContent):
		return "Content is required"
	case errors.Is(err, validators.ErrEmptyAuthor):
		return "Author is required"
	case errors.Is(err, store.ErrNoteNotFound):
		return "Note not found, it may have been deleted"
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Server is unreachable"
	}

	return err.Error()
}
