// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the server and the client:
// typed context keys, JSON response writing, the resty client wrapper,
// JWT helpers and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-notes-board/models"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the caller identity is stored.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, id)
}

// GetIdentityFromContext returns the caller identity stored in ctx.
// ok is false when none was attached.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return id, ok
}
