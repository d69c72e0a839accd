// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/models"
)

const (
	kvTable    = "kv_store"
	profileKey = "user"
)

type profileRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewProfileRepository returns a [ProfileRepository] storing the profile as
// JSON under the "user" key of the kv_store table.
func NewProfileRepository(db *DB, log *logger.Logger) ProfileRepository {
	return &profileRepository{db: db, logger: log, now: time.Now}
}

func (r *profileRepository) Load(ctx context.Context) (models.User, error) {
	query, args, err := r.db.builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": profileKey}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrProfileNotFound
		}
		r.logger.Err(err).Str("func", "profileRepository.Load").Msg("failed to query stored profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var user models.User
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		r.logger.Err(err).Str("func", "profileRepository.Load").Msg("failed to decode stored profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrCorruptProfile, err)
	}

	return user.Clone(), nil
}

func (r *profileRepository) Save(ctx context.Context, user models.User) error {
	payload, err := json.Marshal(user.Clone())
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	query, args, err := r.db.builder.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(profileKey, string(payload), r.now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		r.logger.Err(err).
			Str("func", "profileRepository.Save").
			Int("favorites", len(user.Favorites)).
			Msg("failed to upsert profile")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *profileRepository) Delete(ctx context.Context) error {
	query, args, err := r.db.builder.
		Delete(kvTable).
		Where(sq.Eq{"key": profileKey}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "profileRepository.Delete").Msg("failed to delete profile")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
