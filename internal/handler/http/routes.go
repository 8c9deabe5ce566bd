// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-notes-board/internal/app"
)

// Init builds the router of the notes API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecoverer)
	router.Use(h.withCORS())
	router.Use(h.withIdentity)
	router.Use(middleware.Compress(5, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Post("/notes", h.createNote)
	router.Get("/notes", h.listNotes)
	router.Patch("/notes/{id}/like", h.likeNote)
	router.Patch("/notes/{id}/unlike", h.unlikeNote)
	router.Delete("/notes/{id}", h.deleteNote)

	router.Get("/api/version", h.getServerVersion)

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, app.MsgRouteNotFound, http.StatusNotFound)
}
