// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/models"
)

type favoritesStore struct {
	session Session

	logger *logger.Logger
}

func NewFavoritesStore(session Session, log *logger.Logger) FavoritesStore {
	return &favoritesStore{
		session: session,
		logger:  log,
	}
}

func (f *favoritesStore) Add(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrEmptyDogID
	}
	if !f.session.LoggedIn() {
		return ErrNotLoggedIn
	}
	if f.Contains(id) {
		return nil
	}

	_, err := f.session.Update(ctx, func(u *models.User) {
		if !slices.Contains(u.Favorites, id) {
			u.Favorites = append(u.Favorites, id)
		}
	})
	return err
}

func (f *favoritesStore) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrEmptyDogID
	}
	if !f.session.LoggedIn() {
		return ErrNotLoggedIn
	}
	if !f.Contains(id) {
		return nil
	}

	_, err := f.session.Update(ctx, func(u *models.User) {
		u.Favorites = slices.DeleteFunc(u.Favorites, func(fav string) bool { return fav == id })
	})
	return err
}

func (f *favoritesStore) Toggle(ctx context.Context, id string) (bool, error) {
	if f.Contains(strings.TrimSpace(id)) {
		return false, f.Remove(ctx, id)
	}
	if err := f.Add(ctx, id); err != nil {
		// the in-memory add survives a failed save
		return f.Contains(strings.TrimSpace(id)), err
	}
	return true, nil
}

func (f *favoritesStore) Contains(id string) bool {
	user, ok := f.session.Profile()
	return ok && slices.Contains(user.Favorites, id)
}

func (f *favoritesStore) List() []string {
	user, ok := f.session.Profile()
	if !ok {
		return []string{}
	}
	return user.Favorites
}

func (f *favoritesStore) Clear(ctx context.Context) error {
	user, ok := f.session.Profile()
	if !ok {
		return ErrNotLoggedIn
	}
	if len(user.Favorites) == 0 {
		return nil
	}

	_, err := f.session.Update(ctx, func(u *models.User) {
		u.Favorites = []string{}
	})
	if err != nil {
		f.logger.Warn().Err(err).Str("func", "favoritesStore.Clear").Msg("favourites cleared in memory only")
	}
	return err
}
