// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrInvalidBaseURL = errors.New("invalid base url")
	ErrEmptyNoteID    = errors.New("empty note id")
)

// ResponseError is a non-2xx answer of the server.
type ResponseError struct {
	StatusCode int
	// Message is the "message" field of the body, or the raw body when it
	// is not a JSON envelope.
	Message string

	kind error
}

// NewResponseError builds the error for a response with the given status
// code and message.
func NewResponseError(statusCode int, message string) *ResponseError {
	respErr := &ResponseError{StatusCode: statusCode, Message: message}

	switch statusCode {
	case http.StatusBadRequest:
		respErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.kind = ErrUnauthorized
	case http.StatusNotFound:
		respErr.kind = ErrNotFound
	case http.StatusMethodNotAllowed:
		respErr.kind = ErrMethodNotAllowed
	case http.StatusInternalServerError:
		respErr.kind = ErrInternalServerError
	default:
		respErr.kind = ErrUnexpectedStatus
	}

	return respErr
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.kind, e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// MessageFromError returns the server message carried by err, or err's text
// when err did not come from a server response.
func MessageFromError(err error) string {
	if err == nil {
		return ""
	}

	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}
	return err.Error()
}
