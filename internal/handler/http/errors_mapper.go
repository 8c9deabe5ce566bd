// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-board/internal/app"
	"github.com/MKhiriev/go-notes-board/internal/identity"
	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/service"
	"github.com/MKhiriev/go-notes-board/internal/store"
	"github.com/MKhiriev/go-notes-board/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:        http.StatusBadRequest,
	service.ErrValidation: http.StatusBadRequest,

	identity.ErrInvalidCredentials: http.StatusUnauthorized,

	store.ErrNoteNotFound: http.StatusNotFound,

	store.ErrStorage: http.StatusInternalServerError,
}

// publicCauses are errors whose text may be shown to API callers.
var publicCauses = []error{
	validators.ErrEmptyContent,
	validators.ErrEmptyAuthor,
	ErrInvalidJSON,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError builds the response message for a failed operation.
// Storage details never leave the server.
func messageFromError(prefix string, err error, status int) string {
	if status == http.StatusNotFound {
		return app.MsgNoteNotFound
	}

	for _, cause := range publicCauses {
		if errors.Is(err, cause) {
			return app.FailureMessage(prefix, cause.Error())
		}
	}

	if status == http.StatusBadRequest {
		return app.FailureMessage(prefix, service.ErrValidation.Error())
	}
	return app.FailureMessage(prefix, app.MsgInternalServerError)
}

// writeError maps err to a status and message, logs it and writes the
// error envelope.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, prefix string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "*Handler.writeError").Msg(prefix)
	} else {
		log.Debug().Err(err).Str("func", "*Handler.writeError").Int("status", status).Msg(prefix)
	}

	writeMessage(w, r, messageFromError(prefix, err, status), status)
}
