// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidFilter wraps a validator error for a filter or result window.
	ErrInvalidFilter = errors.New("invalid search filter")

	// ErrZipCodeRequired is returned by distance sorts when no reference zip
	// is known. No network call is made.
	ErrZipCodeRequired = errors.New("zip code required for distance sort")

	// ErrLocationResolution is returned when the reference zip resolves
	// neither through the locations endpoint nor through geolocation.
	ErrLocationResolution = errors.New("could not resolve location")

	// ErrStaleResult is returned to a caller whose request was superseded by a
	// newer filter or page change before it completed.
	ErrStaleResult = errors.New("result superseded by a newer request")

	ErrNotLoggedIn     = errors.New("not logged in")
	ErrNoFavorites     = errors.New("no favourite dogs selected")
	ErrDogsNotFound    = errors.New("no dogs found")
	ErrPageOutOfRange  = errors.New("page out of range")
	ErrNoQuery         = errors.New("no search has been applied")
	ErrEmptyDogID      = errors.New("empty dog id")
	ErrInvalidPageSize = errors.New("page size must be positive")
	ErrNoMatch         = errors.New("upstream returned no match")
	ErrSessionExpired  = errors.New("session expired, please log in again")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrMissingDependency     = errors.New("missing service dependency")
)
