// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-board/internal/utils"
	"github.com/MKhiriev/go-notes-board/models"
)

// JWTProvider resolves "Authorization: Bearer <token>" headers. Requests
// without the header fall back to the anonymous identity; a header that is
// present but malformed, expired or wrongly signed yields
// ErrInvalidCredentials.
type JWTProvider struct {
	signKey   string
	issuer    string
	anonymous *AnonymousProvider
}

func NewJWTProvider(signKey, issuer, anonymousName string) *JWTProvider {
	return &JWTProvider{
		signKey:   signKey,
		issuer:    issuer,
		anonymous: NewAnonymousProvider(anonymousName),
	}
}

func (p *JWTProvider) Identify(r *http.Request) (models.Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return p.anonymous.Identify(r)
	}

	tokenString, err := utils.ParseBearerToken(header)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, p.signKey, p.issuer)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return models.Identity{ID: token.Subject, Name: token.Name}, nil
}
