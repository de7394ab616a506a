// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Leaderboard subscription actions.
const (
	LeaderboardSubscribe   = "Subscribe"
	LeaderboardUnsubscribe = "Unsubscribe"
)

// LeaderboardMember is a member occupying a leaderboard rank.
type LeaderboardMember struct {
	Name        string `json:"name"`
	MemberRefID string `json:"memberRefId"`
}

// LeaderboardEntry is one rank of a leaderboard. Several members share a
// rank when their scores tie. Ranks are not required to be contiguous.
type LeaderboardEntry struct {
	Rank    int                 `json:"rank"`
	Score   float64             `json:"score"`
	Members []LeaderboardMember `json:"members,omitempty"`
}

// MemberNames returns the display names of the members sharing the rank,
// in order.
func (e LeaderboardEntry) MemberNames() []string {
	names := make([]string, 0, len(e.Members))
	for _, m := range e.Members {
		names = append(names, m.Name)
	}
	return names
}

// Leaderboard is the payload of a leaderboard update push.
type Leaderboard struct {
	ID                 string             `json:"id"`
	LeaderboardEntries []LeaderboardEntry `json:"leaderboardEntries"`
}

// LeaderboardFilter selects the slice of a leaderboard pushed to the member.
type LeaderboardFilter struct {
	TopRanksToInclude   int `json:"topRanksToInclude"`
	RanksAboveToInclude int `json:"ranksAboveToInclude"`
	RanksBelowToInclude int `json:"ranksBelowToInclude"`
}

// LeaderboardSubscriptionRequest subscribes to (or unsubscribes from) a
// contest leaderboard.
type LeaderboardSubscriptionRequest struct {
	EntityID          string            `json:"entityId"`
	Action            string            `json:"action"`
	LeaderboardFilter LeaderboardFilter `json:"leaderboardFilter"`
}

// LeaderboardDelta is the comparison of one pushed rank against the
// previously seen snapshot of the same leaderboard.
type LeaderboardDelta struct {
	LeaderboardID string    `json:"leaderboardId"`
	Rank          int       `json:"rank"`
	Score         float64   `json:"score"`
	PreviousScore float64   `json:"previousScore"`
	Members       []string  `json:"members,omitempty"`
	Changed       bool      `json:"changed"`
	ObservedAt    time.Time `json:"observedAt"`

	// RunID is the sample run that journaled the delta. Only set on deltas
	// read back from the journal.
	RunID string `json:"runId,omitempty"`
}
