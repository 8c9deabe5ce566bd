// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-notes-board/internal/app"
	"github.com/MKhiriev/go-notes-board/internal/identity"
	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/utils"
)

// withIdentity resolves the caller and stores it in the request context.
// Requests without credentials pass as anonymous; requests with broken
// credentials are rejected with 401.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		caller, err := h.identity.Identify(r)
		if errors.Is(err, identity.ErrInvalidCredentials) {
			log.Debug().Err(err).Str("func", "*Handler.withIdentity").Msg("rejected credentials")
			writeMessage(w, r, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}
		if err != nil {
			log.Err(err).Str("func", "*Handler.withIdentity").Msg("error identifying caller")
			writeMessage(w, r, app.MsgSomethingWentWrong, http.StatusInternalServerError)
			return
		}

		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("caller", caller.ID)
		})

		ctx := utils.WithIdentity(log.WithContext(r.Context()), caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
