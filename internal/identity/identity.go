// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity resolves the caller of an HTTP request.
//
// The notes board has no accounts and restricts nothing: an identity is only
// attached to the request context for logging. [AnonymousProvider] gives
// every caller the same guest identity, [JWTProvider] additionally accepts
// HS256 bearer tokens and exposes their subject.
package identity

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-board/internal/config"
	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/models"
)

// AnonymousID is the identifier of callers without credentials.
const AnonymousID = "anonymous"

// ErrInvalidCredentials is returned when a request carries an Authorization
// header that cannot be turned into an identity.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Provider attaches a caller identity to a request.
type Provider interface {
	Identify(r *http.Request) (models.Identity, error)
}

// NewProvider returns a JWTProvider when a token sign key is configured and
// an AnonymousProvider otherwise.
func NewProvider(cfg config.App, log *logger.Logger) Provider {
	if cfg.TokenSignKey == "" {
		log.Info().Str("func", "identity.NewProvider").Msg("no token sign key configured, every caller is anonymous")
		return NewAnonymousProvider(cfg.AnonymousName)
	}

	log.Info().Str("func", "identity.NewProvider").Msg("bearer token identities enabled")
	return NewJWTProvider(cfg.TokenSignKey, cfg.TokenIssuer, cfg.AnonymousName)
}

// AnonymousProvider returns the same guest identity for every request.
type AnonymousProvider struct {
	guest models.Identity
}

func NewAnonymousProvider(name string) *AnonymousProvider {
	return &AnonymousProvider{
		guest: models.Identity{ID: AnonymousID, Name: name, Anonymous: true},
	}
}

func (p *AnonymousProvider) Identify(*http.Request) (models.Identity, error) {
	return p.guest, nil
}
