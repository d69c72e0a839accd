// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-paw-finder/internal/adapter"
	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/store"
	"github.com/MKhiriev/go-paw-finder/internal/validators"
)

// ClientServices wires the search pipeline for the terminal client.
type ClientServices struct {
	Session   Session
	Favorites FavoritesStore
	Resolver  LocationResolver
	Hydrator  DogHydrator
	Executor  SearchExecutor
	Sorter    DistanceSorter
	Paginator Paginator
	Browser   FavoritesBrowser
	Matcher   Matcher
	PruneJob  LocationCachePruneJob
}

func NewClientServices(storages *store.ClientStorages, dogs adapter.DogsAdapter, geoLocator adapter.GeoLocator,
	cfg *config.ClientConfig, log *logger.Logger) (*ClientServices, error) {
	if storages == nil || dogs == nil || cfg == nil {
		return nil, ErrMissingDependency
	}

	validator := validators.NewSearchValidator()

	sess := NewSession(dogs, storages.Profile, validator, log.WithComponent("session"))
	favorites := NewFavoritesStore(sess, log.WithComponent("favorites"))
	resolver := NewLocationResolver(dogs, geoLocator, storages.Locations, log.WithComponent("resolver"))
	hydrator := NewDogHydrator(dogs, cfg.Search.HydrateConcurrency, log.WithComponent("hydrator"))
	executor := NewSearchExecutor(dogs, validator, log.WithComponent("search"))
	sorter := NewDistanceSorter(executor, hydrator, resolver, cfg.Search.MaxWorkingSet, log.WithComponent("distance"))

	return &ClientServices{
		Session:   sess,
		Favorites: favorites,
		Resolver:  resolver,
		Hydrator:  hydrator,
		Executor:  executor,
		Sorter:    sorter,
		Paginator: NewPaginator(executor, sorter, hydrator, resolver, sess, cfg.Search, log.WithComponent("paginator")),
		Browser:   NewFavoritesBrowser(favorites, hydrator, resolver, log.WithComponent("favorites_browser")),
		Matcher:   NewMatcher(dogs, favorites, hydrator, resolver, sess, log.WithComponent("matcher")),
		PruneJob:  NewLocationCachePruneJob(storages.Locations, cfg.Workers.CacheTTL, log.WithComponent("cache_prune")),
	}, nil
}
