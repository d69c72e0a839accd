// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the search pipeline of the client: location
// resolution, dog hydration, upstream search, distance sorting, pagination,
// favourites and matching, plus the user session they share.
//
// Leaf components ([LocationResolver], [DogHydrator]) absorb upstream
// failures into empty or partial results. The [Paginator] is where failures
// become visible state.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-paw-finder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LocationResolver maps zip codes to locations.
type LocationResolver interface {
	// Resolve returns a location for every input zip the cache or the
	// upstream knows. Blank and duplicate zips are ignored. Upstream failures
	// are logged and yield missing entries, never an error.
	Resolve(ctx context.Context, zips []string) map[string]models.Location

	// ResolveReference resolves a single zip, falling back to the
	// geolocation service when the locations endpoint has no usable entry.
	// Returns [ErrLocationResolution] if both miss.
	ResolveReference(ctx context.Context, zip string) (models.Location, error)
}

// DogHydrator turns bare dog ids into full records.
type DogHydrator interface {
	// Hydrate fetches ids in concurrent batches of at most 100. A failed batch
	// contributes nothing. Records come back in batch order, not necessarily
	// in input order.
	Hydrate(ctx context.Context, ids []string) []models.Dog
}

// SearchExecutor runs validated searches against the upstream.
type SearchExecutor interface {
	// Search returns one window of ids. Distance modes send no sort.
	Search(ctx context.Context, filter models.SearchFilter, from, size int) (models.SearchResult, error)

	// Breeds lists every breed known upstream.
	Breeds(ctx context.Context) ([]string, error)
}

// DistanceSorter orders candidates by distance from a reference zip.
type DistanceSorter interface {
	// SortByDistance returns ids ordered by distance from referenceZip. Only
	// the first MaxWorkingSet ids are ranked; the rest follow in input order.
	SortByDistance(ctx context.Context, ids []string, referenceZip string, mode models.DistanceMode) ([]string, error)

	// SortCatalog pages the filtered catalog in batches of 100 and re-sorts
	// everything gathered so far after the first batch and then every five
	// batches, reporting each result to onProgress. It returns the last
	// reported progress.
	SortCatalog(ctx context.Context, filter models.SearchFilter, referenceZip string, pageSize int,
		onProgress func(models.CatalogProgress)) (models.CatalogProgress, error)
}

// Session owns the authenticated user profile. Every mutation
// read-modify-writes the whole profile and persists it.
type Session interface {
	// Restore loads the stored profile and re-authenticates with it.
	Restore(ctx context.Context) (models.User, error)

	// Login authenticates upstream and starts a session. A stored profile
	// with the same email keeps its favourites.
	Login(ctx context.Context, req models.LoginRequest, zipCode string) (models.User, error)

	// Logout ends the upstream session and deletes the stored profile.
	Logout(ctx context.Context) error

	// UpdateZipCode sets or clears the reference zip used for distance sorts.
	UpdateZipCode(ctx context.Context, zipCode string) (models.User, error)

	// Update applies fn to a copy of the profile, installs the copy and
	// persists it. A persistence error is returned but the new profile stays
	// in memory.
	Update(ctx context.Context, fn func(u *models.User)) (models.User, error)

	// Profile returns a copy of the current profile.
	Profile() (models.User, bool)

	// Invalidate drops the in-memory session after the upstream rejected
	// the credential. The stored profile is kept for the next login.
	Invalidate()

	LoggedIn() bool
}

// FavoritesStore is the favourite-id set of the session profile.
type FavoritesStore interface {
	Add(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	// Toggle adds id if absent, removes it otherwise, and reports whether
	// it is a favourite afterwards.
	Toggle(ctx context.Context, id string) (bool, error)
	Contains(id string) bool
	List() []string
	Clear(ctx context.Context) error
}

// Paginator is the result pagination state machine. It is safe for
// concurrent use; completions superseded by a newer request are discarded
// and reported as [ErrStaleResult].
type Paginator interface {
	// Apply discards the accumulated ids, runs a fresh search for filter and
	// materialises page 1.
	Apply(ctx context.Context, filter models.SearchFilter) (models.Page, error)

	// Reload re-applies the current filter.
	Reload(ctx context.Context) (models.Page, error)

	Next(ctx context.Context) (models.Page, error)
	Prev(ctx context.Context) (models.Page, error)

	// GoTo materialises page n (1-based), fetching more upstream ids when the
	// page extends past the accumulated list and more may exist.
	GoTo(ctx context.Context, n int) (models.Page, error)

	State() models.PaginatorState
	Page() models.Page
	Err() error
	Filter() models.SearchFilter
	AccumulatedIDs() []string
	Total() int
	Exhausted() bool
}

// FavoritesBrowser pages through the hydrated favourites.
type FavoritesBrowser interface {
	// Browse hydrates the favourites, sorts them by sortBy and returns page
	// n (1-based). An empty favourite set yields an empty page 1.
	Browse(ctx context.Context, sortBy models.SortOption, n int) (models.Page, error)
}

// Matcher picks an adoption match among the favourites.
type Matcher interface {
	// Match submits the favourite closest to the user's zip to the upstream
	// match endpoint. When no favourite can be located a random one is used.
	Match(ctx context.Context) (models.Match, error)
}

// LocationCachePruneJob periodically removes stale location cache rows.
type LocationCachePruneJob interface {
	// Start runs the prune loop on interval until ctx is cancelled or Stop is
	// called. A running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
