// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
)

// ClientStorages groups the client repositories so they can be passed to the
// service layer as one value.
type ClientStorages struct {
	Profile   ProfileRepository
	Locations LocationCache

	db *DB
}

// NewClientStorages connects to the database named by cfg, runs migrations
// and wires both repositories to the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("func", "NewClientStorages").Msg("creating new storages...")

	db, err := Connect(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	return &ClientStorages{
		Profile:   NewProfileRepository(db, log),
		Locations: NewLocationCache(db, log),
		db:        db,
	}, nil
}

// Close releases the underlying connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
