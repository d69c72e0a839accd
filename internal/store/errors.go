// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrProfileNotFound is returned by Load when no profile was saved yet.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrCorruptProfile is returned when the stored profile cannot be decoded.
	ErrCorruptProfile = errors.New("stored profile is corrupt")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrUnsupportedDSN is returned by Connect for an empty or in-memory DSN.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
