// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/models"
)

// FavoritesPageSize is the number of favourites shown per page.
const FavoritesPageSize = 6

type favoritesBrowser struct {
	favorites FavoritesStore
	hydrator  DogHydrator
	resolver  LocationResolver

	logger *logger.Logger
}

func NewFavoritesBrowser(favorites FavoritesStore, hydrator DogHydrator, resolver LocationResolver, log *logger.Logger) FavoritesBrowser {
	return &favoritesBrowser{
		favorites: favorites,
		hydrator:  hydrator,
		resolver:  resolver,
		logger:    log,
	}
}

func (b *favoritesBrowser) Browse(ctx context.Context, sortBy models.SortOption, n int) (models.Page, error) {
	if n < 1 {
		return models.Page{}, ErrPageOutOfRange
	}

	ids := b.favorites.List()
	if len(ids) == 0 {
		if n > 1 {
			return models.Page{}, ErrPageOutOfRange
		}
		return models.Page{Number: 1, Size: FavoritesPageSize, Dogs: []models.Dog{}}, nil
	}

	dogs := b.hydrator.Hydrate(ctx, ids)
	if len(dogs) < len(ids) {
		b.logger.Debug().Str("func", "favoritesBrowser.Browse").
			Int("favorites", len(ids)).Int("hydrated", len(dogs)).Msg("some favourites could not be loaded")
	}
	sortFavorites(dogs, sortBy)

	start := (n - 1) * FavoritesPageSize
	if start >= len(dogs) && n > 1 {
		return models.Page{}, ErrPageOutOfRange
	}
	end := min(start+FavoritesPageSize, len(dogs))

	pageDogs := slices.Clone(dogs[start:end])
	annotateLocations(pageDogs, b.resolver.Resolve(ctx, models.ZipCodes(pageDogs)))

	return models.Page{
		Number:  n,
		Size:    FavoritesPageSize,
		Dogs:    pageDogs,
		Total:   len(dogs),
		HasNext: end < len(dogs),
	}, nil
}

// sortFavorites orders dogs by name, age or breed. Strings compare
// case-insensitively, ties break on id. An empty field sorts by name.
func sortFavorites(dogs []models.Dog, sortBy models.SortOption) {
	compare := func(a, b models.Dog) int {
		switch sortBy.Field {
		case models.SortByAge:
			return cmp.Compare(a.Age, b.Age)
		case models.SortByBreed:
			return cmp.Compare(strings.ToLower(a.Breed), strings.ToLower(b.Breed))
		default:
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	}

	slices.SortFunc(dogs, func(a, b models.Dog) int {
		c := compare(a, b)
		if sortBy.Direction == models.Desc {
			c = -c
		}
		return cmp.Or(c, cmp.Compare(a.ID, b.ID))
	})
}
