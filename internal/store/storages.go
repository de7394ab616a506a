// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/ziqni/ziqni-go-samples/internal/config"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
)

// Storages groups the local repositories of the harness.
type Storages struct {
	// Deltas is the leaderboard delta journal.
	Deltas DeltaRepository

	db *DB
}

// NewStorages opens the SQLite database named by cfg.DB.DSN, applies the
// embedded migrations and builds the repositories on it.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Deltas: NewDeltaRepository(db, logger),
		db:     db,
	}, nil
}

// Close closes the underlying database.
func (s *Storages) Close() error {
	return s.db.Close()
}
