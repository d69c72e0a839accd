// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/MKhiriev/go-paw-finder/internal/adapter"
	"github.com/MKhiriev/go-paw-finder/internal/geo"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/models"
)

type matcher struct {
	adapter   adapter.DogsAdapter
	favorites FavoritesStore
	hydrator  DogHydrator
	resolver  LocationResolver
	session   Session

	// pick returns a random index in [0, n).
	pick func(n int) int

	logger *logger.Logger
}

func NewMatcher(dogs adapter.DogsAdapter, favorites FavoritesStore, hydrator DogHydrator, resolver LocationResolver,
	sess Session, log *logger.Logger) Matcher {
	return &matcher{
		adapter:   dogs,
		favorites: favorites,
		hydrator:  hydrator,
		resolver:  resolver,
		session:   sess,
		pick:      rand.IntN,
		logger:    log,
	}
}

func (m *matcher) Match(ctx context.Context) (models.Match, error) {
	ids := m.favorites.List()
	if len(ids) == 0 {
		return models.Match{}, ErrNoFavorites
	}

	dogs := orderByIDs(m.hydrator.Hydrate(ctx, ids), ids)
	if len(dogs) == 0 {
		return models.Match{}, ErrDogsNotFound
	}

	match, located := m.closest(ctx, dogs)
	if !located {
		match = models.Match{Dog: dogs[m.pick(len(dogs))], Random: true}
		m.logger.Info().Str("func", "matcher.Match").Str("dog_id", match.Dog.ID).
			Msg("no favourite could be located, picked at random")
	}

	id, err := m.adapter.Match(ctx, []string{match.Dog.ID})
	if err != nil {
		checkUnauthorized(m.session, err)
		return models.Match{}, fmt.Errorf("match: %w", err)
	}
	if id == "" {
		return models.Match{}, ErrNoMatch
	}

	match.DogID = id
	if id != match.Dog.ID {
		for _, d := range dogs {
			if d.ID == id {
				match.Dog = d
				break
			}
		}
	}

	return match, nil
}

// closest returns the favourite nearest to the user's zip. located is false
// when no distance could be computed.
func (m *matcher) closest(ctx context.Context, dogs []models.Dog) (models.Match, bool) {
	user, _ := m.session.Profile()
	if user.ZipCode == "" {
		return models.Match{}, false
	}

	reference, err := m.resolver.ResolveReference(ctx, user.ZipCode)
	if err != nil {
		m.logger.Warn().Err(err).Str("func", "matcher.closest").Msg("user location unknown")
		return models.Match{}, false
	}

	locations := m.resolver.Resolve(ctx, models.ZipCodes(dogs))

	var (
		best  models.Match
		found bool
	)
	for _, d := range dogs {
		loc, ok := locations[d.ZipCode]
		if !ok {
			continue
		}
		km, err := geo.CalculateDistance(reference.Coordinates(), loc.Coordinates())
		if err != nil {
			continue
		}
		if !found || km < best.DistanceKm {
			d.City, d.State = loc.City, loc.State
			best = models.Match{Dog: d, DistanceKm: km}
			found = true
		}
	}

	return best, found
}
