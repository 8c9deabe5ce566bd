// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-notes-board/internal/app"
)

// ErrInvalidJSON is reported when a request body cannot be decoded.
var ErrInvalidJSON = errors.New(app.MsgInvalidJSON)
