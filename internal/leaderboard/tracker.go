// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package leaderboard tracks the last seen state of every leaderboard the
// member is subscribed to and reports which ranks changed on each push.
package leaderboard

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ziqni/ziqni-go-samples/internal/cmap"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/metrics"
	"github.com/ziqni/ziqni-go-samples/models"
)

//go:generate mockgen -source=tracker.go -destination=../mock/journal_mock.go -package=mock

const changedMarker = "*"

// Journal records changed ranks outside the process.
type Journal interface {
	Record(ctx context.Context, deltas []models.LeaderboardDelta) error
}

// snapshot is the rank to score view of one leaderboard. mu is held across
// the whole compare and replace of a push.
type snapshot struct {
	mu     sync.Mutex
	scores map[int]float64
}

// Tracker compares leaderboard pushes against the previous push for the
// same leaderboard id.
type Tracker struct {
	snapshots *cmap.Map[*snapshot]
	journal   Journal
	metrics   *metrics.Metrics
	logger    *logger.Logger
	now       func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithJournal records every changed rank to j.
func WithJournal(j Journal) Option {
	return func(t *Tracker) { t.journal = j }
}

// WithClock overrides the time source of ObservedAt.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// NewTracker returns an empty tracker. m may be nil.
func NewTracker(m *metrics.Metrics, l *logger.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		snapshots: cmap.New[*snapshot](),
		metrics:   m,
		logger:    l,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// OnLeaderboardUpdate diffs entries against the snapshot of leaderboardID,
// logs one line per rank and replaces the snapshot with entries. It returns
// the deltas in rank order. An empty push changes nothing and returns nil.
func (t *Tracker) OnLeaderboardUpdate(ctx context.Context, leaderboardID string, entries []models.LeaderboardEntry) []models.LeaderboardDelta {
	if len(entries) == 0 {
		return nil
	}

	snap, _ := t.snapshots.GetOrCreate(leaderboardID, func() *snapshot {
		return &snapshot{scores: make(map[int]float64)}
	})

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b models.LeaderboardEntry) int {
		return a.Rank - b.Rank
	})

	observedAt := t.now()
	deltas := make([]models.LeaderboardDelta, 0, len(sorted))
	var changed []models.LeaderboardDelta

	snap.mu.Lock()
	for _, e := range sorted {
		previous := snap.scores[e.Rank]
		d := models.LeaderboardDelta{
			LeaderboardID: leaderboardID,
			Rank:          e.Rank,
			Score:         e.Score,
			PreviousScore: previous,
			Members:       e.MemberNames(),
			Changed:       e.Score != previous,
			ObservedAt:    observedAt,
		}
		t.logDelta(d)
		deltas = append(deltas, d)
		if d.Changed {
			changed = append(changed, d)
		}
	}

	clear(snap.scores)
	for _, e := range sorted {
		snap.scores[e.Rank] = e.Score
	}
	snap.mu.Unlock()

	t.metrics.ObserveLeaderboardPush(len(changed), len(deltas)-len(changed))
	t.record(ctx, changed)

	return deltas
}

func (t *Tracker) logDelta(d models.LeaderboardDelta) {
	marker := ""
	if d.Changed {
		marker = changedMarker
	}
	t.logger.Info().
		Str("leaderboard_id", d.LeaderboardID).
		Int("rank", d.Rank).
		Float64("score", d.Score).
		Strs("members", d.Members).
		Bool("changed", d.Changed).
		Msg(strings.TrimSpace(fmt.Sprintf("%d | %s | %v %s", d.Rank, strings.Join(d.Members, ", "), d.Score, marker)))
}

func (t *Tracker) record(ctx context.Context, changed []models.LeaderboardDelta) {
	if t.journal == nil || len(changed) == 0 {
		return
	}
	if err := t.journal.Record(ctx, changed); err != nil {
		t.metrics.ObserveJournalFailure()
		t.logger.Error().Err(err).
			Str("leaderboard_id", changed[0].LeaderboardID).
			Int("deltas", len(changed)).
			Msg("failed to journal leaderboard changes")
	}
}

// Snapshot returns a copy of the last pushed ranks of leaderboardID and
// whether a non-empty push has been seen for it.
func (t *Tracker) Snapshot(leaderboardID string) (map[int]float64, bool) {
	snap, ok := t.snapshots.Get(leaderboardID)
	if !ok {
		return nil, false
	}
	snap.mu.Lock()
	defer snap.mu.Unlock()
	out := make(map[int]float64, len(snap.scores))
	for rank, score := range snap.scores {
		out[rank] = score
	}
	return out, true
}

// Len returns the number of tracked leaderboards.
func (t *Tracker) Len() int {
	return t.snapshots.Count()
}

// Reset drops every snapshot.
func (t *Tracker) Reset() {
	t.snapshots.Clear()
}
