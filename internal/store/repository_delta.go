// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/utils"
	"github.com/ziqni/ziqni-go-samples/models"
)

// deltaRepository is the SQLite-backed implementation of [DeltaRepository].
type deltaRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDeltaRepository constructs a [DeltaRepository] on db.
func NewDeltaRepository(db *DB, logger *logger.Logger) DeltaRepository {
	logger.Debug().Msg("creating leaderboard delta repository")
	return &deltaRepository{
		db:     db,
		logger: logger,
	}
}

// Record inserts deltas tagged with the run id carried by ctx.
func (r *deltaRepository) Record(ctx context.Context, deltas []models.LeaderboardDelta) error {
	if len(deltas) == 0 {
		return nil
	}
	log := r.logger

	runID, _ := utils.GetRunIDFromContext(ctx)
	query, args, err := buildInsertDeltasQuery(runID, deltas)
	if err != nil {
		log.Err(err).Str("func", "*deltaRepository.Record").Msg("error building insert query")
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*deltaRepository.Record").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*deltaRepository.Record").
			Str("leaderboard_id", deltas[0].LeaderboardID).
			Int("deltas", len(deltas)).
			Msg("error inserting leaderboard deltas")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*deltaRepository.Record").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// ListDeltas returns the journaled deltas of leaderboardID, newest first.
// Every returned delta is a changed one.
func (r *deltaRepository) ListDeltas(ctx context.Context, leaderboardID string, limit uint64) ([]models.LeaderboardDelta, error) {
	log := r.logger

	query, args, err := buildSelectDeltasQuery(leaderboardID, limit)
	if err != nil {
		log.Err(err).Str("func", "*deltaRepository.ListDeltas").Msg("error building select query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*deltaRepository.ListDeltas").
			Str("leaderboard_id", leaderboardID).
			Msg("error querying leaderboard deltas")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var deltas []models.LeaderboardDelta
	for rows.Next() {
		var (
			d       models.LeaderboardDelta
			members string
		)
		if err = rows.Scan(&d.RunID, &d.LeaderboardID, &d.Rank, &d.Score, &d.PreviousScore, &members, &d.ObservedAt); err != nil {
			log.Err(err).Str("func", "*deltaRepository.ListDeltas").Msg("error scanning leaderboard delta row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if d.Members, err = decodeMembers(members); err != nil {
			return nil, fmt.Errorf("%w: members: %w", ErrScanningRows, err)
		}
		d.Changed = true
		deltas = append(deltas, d)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*deltaRepository.ListDeltas").Msg("error iterating leaderboard delta rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return deltas, nil
}

// Purge deletes the journal of leaderboardID.
func (r *deltaRepository) Purge(ctx context.Context, leaderboardID string) (int64, error) {
	query, args, err := buildDeleteDeltasQuery(leaderboardID)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "*deltaRepository.Purge").
			Str("leaderboard_id", leaderboardID).
			Msg("error deleting leaderboard deltas")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}
