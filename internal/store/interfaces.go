// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client's state: the user profile (including its
// favourites) and a zip code -> location cache.
//
// Both repositories sit on a [DB] opened by [Connect], which picks SQLite or
// PostgreSQL from the DSN, runs the embedded goose migrations and builds
// queries with squirrel in the matching placeholder format.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-paw-finder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProfileRepository is a key-value style store for the single local profile.
type ProfileRepository interface {
	// Load returns the stored profile or [ErrProfileNotFound].
	Load(ctx context.Context) (models.User, error)
	// Save replaces the stored profile as a whole.
	Save(ctx context.Context, user models.User) error
	// Delete removes the stored profile. Deleting a missing profile is not an
	// error.
	Delete(ctx context.Context) error
}

// LocationCache keeps locations returned by the upstream so repeated distance
// sorts do not re-resolve the same zips.
type LocationCache interface {
	// Get returns cached entries for zips. Missing zips are absent from the
	// map.
	Get(ctx context.Context, zips []string) (map[string]models.Location, error)
	// Put upserts locations, stamping them with the current time.
	Put(ctx context.Context, locations []models.Location) error
	// Prune deletes entries cached before olderThan and reports how many
	// were removed.
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
