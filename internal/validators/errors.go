// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyContent  = errors.New("content is required")
	ErrEmptyAuthor   = errors.New("author is required")
	ErrInvalidNoteID = errors.New("invalid note id")
)
