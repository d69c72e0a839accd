// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-paw-finder/internal/adapter"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/store"
	"github.com/MKhiriev/go-paw-finder/internal/validators"
	"github.com/MKhiriev/go-paw-finder/models"
)

type session struct {
	adapter   adapter.DogsAdapter
	profiles  store.ProfileRepository
	validator validators.Validator

	// mu guards user and serialises persistence so the stored profile never
	// lags behind an older in-memory version.
	mu   sync.RWMutex
	user *models.User

	logger *logger.Logger
}

func NewSession(dogs adapter.DogsAdapter, profiles store.ProfileRepository, validator validators.Validator, log *logger.Logger) Session {
	return &session{
		adapter:   dogs,
		profiles:  profiles,
		validator: validator,
		logger:    log,
	}
}

func (s *session) Restore(ctx context.Context) (models.User, error) {
	stored, err := s.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return models.User{}, ErrNotLoggedIn
		}
		return models.User{}, fmt.Errorf("load profile: %w", err)
	}

	if err = s.validator.Validate(ctx, stored); err != nil {
		s.logger.Warn().Err(err).Str("func", "session.Restore").Msg("stored profile is invalid, ignoring it")
		return models.User{}, ErrNotLoggedIn
	}

	if err = s.adapter.Login(ctx, models.LoginRequest{Name: stored.Name, Email: stored.Email}); err != nil {
		return models.User{}, fmt.Errorf("re-authenticate stored profile: %w", err)
	}

	user := stored.Clone()
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	s.logger.Info().Str("func", "session.Restore").Str("email", user.Email).Msg("session restored")

	return user.Clone(), nil
}

func (s *session) Login(ctx context.Context, req models.LoginRequest, zipCode string) (models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	zipCode = strings.TrimSpace(zipCode)

	candidate := models.User{Name: req.Name, Email: req.Email, ZipCode: zipCode}
	if err := s.validator.Validate(ctx, candidate); err != nil {
		return models.User{}, err
	}

	if err := s.adapter.Login(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	user := candidate.Clone()
	stored, err := s.profiles.Load(ctx)
	switch {
	case err == nil && strings.EqualFold(stored.Email, req.Email):
		user.Favorites = stored.Clone().Favorites
		if user.ZipCode == "" {
			user.ZipCode = stored.ZipCode
		}
	case err != nil && !errors.Is(err, store.ErrProfileNotFound):
		s.logger.Warn().Err(err).Str("func", "session.Login").Msg("failed to read stored profile, starting fresh")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	if err = s.profiles.Save(ctx, user); err != nil {
		s.logger.Err(err).Str("func", "session.Login").Msg("failed to persist profile")
		return user.Clone(), fmt.Errorf("save profile: %w", err)
	}

	return user.Clone(), nil
}

func (s *session) Logout(ctx context.Context) error {
	var errs []error

	if err := s.adapter.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "session.Logout").Msg("upstream logout failed")
		errs = append(errs, fmt.Errorf("logout: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.profiles.Delete(ctx); err != nil {
		errs = append(errs, fmt.Errorf("delete profile: %w", err))
	}

	return errors.Join(errs...)
}

func (s *session) UpdateZipCode(ctx context.Context, zipCode string) (models.User, error) {
	zipCode = strings.TrimSpace(zipCode)
	if zipCode != "" && !validators.IsZipCode(zipCode) {
		return models.User{}, validators.ErrInvalidZipCode
	}

	return s.Update(ctx, func(u *models.User) {
		u.ZipCode = zipCode
	})
}

func (s *session) Update(ctx context.Context, fn func(u *models.User)) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.User{}, ErrNotLoggedIn
	}

	next := s.user.Clone()
	fn(&next)
	s.user = &next

	if err := s.profiles.Save(ctx, next); err != nil {
		s.logger.Err(err).Str("func", "session.Update").Msg("failed to persist profile, keeping in-memory change")
		return next.Clone(), fmt.Errorf("save profile: %w", err)
	}

	return next.Clone(), nil
}

func (s *session) Profile() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return s.user.Clone(), true
}

func (s *session) Invalidate() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.logger.Info().Str("func", "session.Invalidate").Msg("session invalidated by upstream")
}

func (s *session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// checkUnauthorized invalidates sess when err is an upstream 401 and
// reports whether it did.
func checkUnauthorized(sess Session, err error) bool {
	if sess == nil || !errors.Is(err, adapter.ErrUnauthorized) {
		return false
	}
	sess.Invalidate()
	return true
}
