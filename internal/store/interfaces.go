// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/ziqni/ziqni-go-samples/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DeltaRepository is the journal of changed leaderboard ranks. It
// satisfies leaderboard.Journal.
type DeltaRepository interface {
	// Record appends deltas in a single transaction.
	Record(ctx context.Context, deltas []models.LeaderboardDelta) error

	// ListDeltas returns the most recent deltas of leaderboardID, newest
	// first. A limit of zero or less returns every row.
	ListDeltas(ctx context.Context, leaderboardID string, limit uint64) ([]models.LeaderboardDelta, error)

	// Purge removes every delta of leaderboardID and returns the number of
	// rows removed.
	Purge(ctx context.Context, leaderboardID string) (int64, error)
}
