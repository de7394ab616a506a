// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ziqni/ziqni-go-samples/models"
)

const deltasTable = "leaderboard_deltas"

var deltaColumns = []string{
	"run_id",
	"leaderboard_id",
	"rank",
	"score",
	"previous_score",
	"members",
	"observed_at",
}

var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildInsertDeltasQuery builds one multi-row INSERT for deltas.
func buildInsertDeltasQuery(runID string, deltas []models.LeaderboardDelta) (string, []any, error) {
	if len(deltas) == 0 {
		return "", nil, fmt.Errorf("%w: no deltas to insert", ErrBuildingSQLQuery)
	}

	builder := sqlBuilder.Insert(deltasTable).Columns(deltaColumns...)
	for _, d := range deltas {
		members, err := encodeMembers(d.Members)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		builder = builder.Values(runID, d.LeaderboardID, d.Rank, d.Score, d.PreviousScore, members, d.ObservedAt.UTC())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectDeltasQuery selects the deltas of one leaderboard, newest first.
func buildSelectDeltasQuery(leaderboardID string, limit uint64) (string, []any, error) {
	builder := sqlBuilder.Select(deltaColumns...).
		From(deltasTable).
		Where(sq.Eq{"leaderboard_id": leaderboardID}).
		OrderBy("observed_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteDeltasQuery(leaderboardID string) (string, []any, error) {
	query, args, err := sqlBuilder.Delete(deltasTable).
		Where(sq.Eq{"leaderboard_id": leaderboardID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func encodeMembers(members []string) (string, error) {
	if members == nil {
		members = []string{}
	}
	b, err := json.Marshal(members)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeMembers(raw string) ([]string, error) {
	var members []string
	if err := json.Unmarshal([]byte(raw), &members); err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}
	return members, nil
}
