// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input checks applied to notes before they
// reach storage. Validators are injected into services, never called from
// the transport layer directly.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
// With no fields every known field of the value is checked.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
