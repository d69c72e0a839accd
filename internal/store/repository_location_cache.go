// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/models"
)

const locationTable = "location_cache"

var locationColumns = []string{"zip_code", "city", "state", "county", "latitude", "longitude", "cached_at"}

type locationCache struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewLocationCache(db *DB, log *logger.Logger) LocationCache {
	return &locationCache{db: db, logger: log, now: time.Now}
}

func (c *locationCache) Get(ctx context.Context, zips []string) (map[string]models.Location, error) {
	found := make(map[string]models.Location, len(zips))
	if len(zips) == 0 {
		return found, nil
	}

	query, args, err := c.db.builder.
		Select(locationColumns...).
		From(locationTable).
		Where(sq.Eq{"zip_code": zips}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		c.logger.Err(err).Str("func", "locationCache.Get").Int("zips", len(zips)).Msg("failed to query location cache")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var loc models.Location
		if err = rows.Scan(&loc.ZipCode, &loc.City, &loc.State, &loc.County, &loc.Latitude, &loc.Longitude, &loc.CachedAt); err != nil {
			return nil, fmt.Errorf("scan cached location: %w", err)
		}
		found[loc.ZipCode] = loc
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

func (c *locationCache) Put(ctx context.Context, locations []models.Location) error {
	if len(locations) == 0 {
		return nil
	}

	now := c.now().UTC()
	insert := c.db.builder.Insert(locationTable).Columns(locationColumns...)
	for _, loc := range locations {
		insert = insert.Values(loc.ZipCode, loc.City, loc.State, loc.County, loc.Latitude, loc.Longitude, now)
	}

	query, args, err := insert.
		Suffix("ON CONFLICT (zip_code) DO UPDATE SET " +
			"city = excluded.city, state = excluded.state, county = excluded.county, " +
			"latitude = excluded.latitude, longitude = excluded.longitude, cached_at = excluded.cached_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = c.db.withRetry(ctx, func() error {
		_, execErr := c.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		c.logger.Err(err).Str("func", "locationCache.Put").Int("locations", len(locations)).Msg("failed to upsert locations")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (c *locationCache) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	query, args, err := c.db.builder.
		Delete(locationTable).
		Where(sq.Lt{"cached_at": olderThan.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		c.logger.Err(err).Str("func", "locationCache.Prune").Msg("failed to prune location cache")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return res.RowsAffected()
}
