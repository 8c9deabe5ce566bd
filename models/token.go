// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT carrying a caller identity.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set, the caller's
// stable identifier travels in "sub". Name is an optional display name.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Name is the optional human readable caller name ("name" claim).
	Name string `json:"name,omitempty"`

	// SignedString is the compact JWS form, set only on issued tokens.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Identity describes whoever sent a request. It is informational only:
// nothing in the notes board is restricted by identity.
type Identity struct {
	// ID is the stable caller identifier ("anonymous" for guests).
	ID string `json:"id"`

	// Name is a display name, may be empty.
	Name string `json:"name,omitempty"`

	// Anonymous is true when no credentials were presented.
	Anonymous bool `json:"anonymous"`
}
