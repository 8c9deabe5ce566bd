// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-notes-board/internal/app"
	"github.com/MKhiriev/go-notes-board/internal/logger"
)

// withRecoverer turns a panic in a handler into the generic 500 response.
// http.ErrAbortHandler is re-raised so the server aborts the connection.
func (h *Handler) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.withRecoverer").
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			writeMessage(w, r, app.MsgSomethingWentWrong, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
