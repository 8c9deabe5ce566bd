// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/utils"
)

// writeJSON writes data and logs a failed write on the request logger.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error writing response")
	}
}

// writeMessage writes a {"message": ...} envelope.
func writeMessage(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	if _, err := utils.WriteMessage(w, message, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeMessage").Msg("error writing response")
	}
}
