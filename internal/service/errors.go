// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrValidation wraps every input validation failure. The wrapped
	// validators error names the offending field.
	ErrValidation = errors.New("validation error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrUnexpectedResponse is returned on the client when the server answers
	// with a status or message the client does not know.
	ErrUnexpectedResponse = errors.New("unexpected server response")
)
