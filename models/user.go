// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// User is the authenticated user profile. It is persisted as a whole under a
// single key of the local key-value store.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`

	// ZipCode is the user's own zip, used as the reference for distance
	// sorts. Optional.
	ZipCode string `json:"zipcode,omitempty"`

	// Favorites is an order-irrelevant, deduplicated set of dog IDs.
	Favorites []string `json:"favorites"`
}

// Clone returns a deep copy of the profile.
func (u User) Clone() User {
	u.Favorites = slices.Clone(u.Favorites)
	if u.Favorites == nil {
		u.Favorites = []string{}
	}
	return u
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Match is the outcome of the favourites matcher.
type Match struct {
	// DogID is the ID confirmed by POST /dogs/match.
	DogID string `json:"match"`

	Dog Dog `json:"-"`

	// DistanceKm is the distance from the user's zip, zero when Random.
	DistanceKm float64 `json:"-"`

	// Random is set when no favourite could be located and the pick was
	// made at random.
	Random bool `json:"-"`
}
