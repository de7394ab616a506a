// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/migrations"
)

// DB is the journal database connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded journal schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
