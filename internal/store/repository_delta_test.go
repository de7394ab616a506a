// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/utils"
	"github.com/ziqni/ziqni-go-samples/models"
)

const (
	insertDeltasSQL = `INSERT INTO leaderboard_deltas`
	selectDeltasSQL = `SELECT (.+) FROM leaderboard_deltas WHERE leaderboard_id = \?`
	deleteDeltasSQL = `DELETE FROM leaderboard_deltas WHERE leaderboard_id = \?`
)

var deltaRowColumns = []string{"run_id", "leaderboard_id", "rank", "score", "previous_score", "members", "observed_at"}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(db *sql.DB) DeltaRepository {
	return NewDeltaRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop())
}

// ── Record ───────────────────────────────────────────────────────────────────

func TestRecord_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)
	ctx := utils.WithRunID(context.Background(), "run-9")

	mock.ExpectBegin()
	mock.ExpectExec(insertDeltasSQL).
		WithArgs("run-9", "lb", 1, 15.0, 10.0, `["alice"]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Record(ctx, []models.LeaderboardDelta{
		{LeaderboardID: "lb", Rank: 1, Score: 15, PreviousScore: 10, Members: []string{"alice"}, Changed: true, ObservedAt: observed},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_NoRunID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(insertDeltasSQL).
		WithArgs("", "lb", 2, 1.0, 0.0, "[]", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Record(context.Background(), []models.LeaderboardDelta{{LeaderboardID: "lb", Rank: 2, Score: 1, ObservedAt: observed}})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	require.NoError(t, repo.Record(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_Failures(t *testing.T) {
	deltas := []models.LeaderboardDelta{{LeaderboardID: "lb", Rank: 1, Score: 1, ObservedAt: observed}}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "begin",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("locked"))
			},
			wantErr: ErrBeginningTransaction,
		},
		{
			name: "insert",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(insertDeltasSQL).WillReturnError(errors.New("no such table"))
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "commit",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(insertDeltasSQL).WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit().WillReturnError(errors.New("disk full"))
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestRepo(db)
			tt.setup(mock)

			err := repo.Record(context.Background(), deltas)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── ListDeltas ───────────────────────────────────────────────────────────────

func TestListDeltas_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	rows := sqlmock.NewRows(deltaRowColumns).
		AddRow("run-1", "lb", 1, 15.0, 10.0, `["alice","bob"]`, observed).
		AddRow("run-1", "lb", 3, 2.0, 0.0, `[]`, observed)
	mock.ExpectQuery(selectDeltasSQL).WithArgs("lb").WillReturnRows(rows)

	deltas, err := repo.ListDeltas(context.Background(), "lb", 10)

	require.NoError(t, err)
	require.Len(t, deltas, 2)
	assert.Equal(t, models.LeaderboardDelta{
		RunID:         "run-1",
		LeaderboardID: "lb",
		Rank:          1,
		Score:         15,
		PreviousScore: 10,
		Members:       []string{"alice", "bob"},
		Changed:       true,
		ObservedAt:    observed,
	}, deltas[0])
	assert.Nil(t, deltas[1].Members)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDeltas_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	mock.ExpectQuery(selectDeltasSQL).WithArgs("lb").WillReturnRows(sqlmock.NewRows(deltaRowColumns))

	deltas, err := repo.ListDeltas(context.Background(), "lb", 0)

	require.NoError(t, err)
	assert.Empty(t, deltas)
}

func TestListDeltas_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	mock.ExpectQuery(selectDeltasSQL).WillReturnError(errors.New("boom"))

	_, err := repo.ListDeltas(context.Background(), "lb", 0)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListDeltas_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	rows := sqlmock.NewRows([]string{"run_id"}).AddRow("run-1")
	mock.ExpectQuery(selectDeltasSQL).WillReturnRows(rows)

	_, err := repo.ListDeltas(context.Background(), "lb", 0)

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestListDeltas_BadMembers(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	rows := sqlmock.NewRows(deltaRowColumns).AddRow("run-1", "lb", 1, 1.0, 0.0, `{`, observed)
	mock.ExpectQuery(selectDeltasSQL).WillReturnRows(rows)

	_, err := repo.ListDeltas(context.Background(), "lb", 0)

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestListDeltas_RowsError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	rows := sqlmock.NewRows(deltaRowColumns).
		AddRow("run-1", "lb", 1, 1.0, 0.0, `[]`, observed).
		RowError(0, errors.New("corrupt page"))
	mock.ExpectQuery(selectDeltasSQL).WillReturnRows(rows)

	_, err := repo.ListDeltas(context.Background(), "lb", 0)

	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── Purge ────────────────────────────────────────────────────────────────────

func TestPurge(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	mock.ExpectExec(deleteDeltasSQL).WithArgs("lb").WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.Purge(context.Background(), "lb")

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestPurge_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	mock.ExpectExec(deleteDeltasSQL).WillReturnError(errors.New("readonly"))

	_, err := repo.Purge(context.Background(), "lb")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}
