// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks search filters, result windows and login input
// before they reach the upstream API.
//
// A [Validator] accepts any supported value and an optional list of field
// names restricting which rules run. Services hold a Validator and call it
// before mapping input to query parameters.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
