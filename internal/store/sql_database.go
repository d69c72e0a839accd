// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/migrations"
)

// Dialect names the SQL driver behind a [DB]. The values double as
// database/sql driver names and goose dialects.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "pgx"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// DB wraps *sql.DB with the dialect-specific query builder and error
// classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// DialectFromDSN returns [DialectPostgres] for postgres:// URLs and
// [DialectSQLite] otherwise.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// Connect opens the database named by cfg.DSN, pings it and runs migrations.
func Connect(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" || strings.Contains(cfg.DSN, ":memory:") {
		return nil, ErrUnsupportedDSN
	}

	var (
		db  *DB
		err error
	)
	switch DialectFromDSN(cfg.DSN) {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DSN, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DSN, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	var format sq.PlaceholderFormat = sq.Question
	var classifier ErrorClassificator = NewSQLiteErrorClassifier()
	if dialect == DialectPostgres {
		format = sq.Dollar
		classifier = NewPostgresErrorClassifier()
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(format),
		errorClassificator: classifier,
		logger:             log,
	}
}

func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, string(db.dialect))
}

// Dialect returns the driver the DB was opened with.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// withRetry runs fn until it succeeds, fails with a non-retryable error or
// maxAttempts is reached.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	return err
}
