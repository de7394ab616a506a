// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Admin API destinations.
const (
	DestMembersQuery = "/aapi/members/query"
	DestEventsCreate = "/aapi/events/create"
)

// Member API destinations.
const (
	DestMember               = "/mapi/member"
	DestAwards               = "/mapi/awards"
	DestAchievements         = "/mapi/achievements"
	DestCompetitions         = "/mapi/competitions"
	DestContests             = "/mapi/contests"
	DestRewards              = "/mapi/rewards"
	DestManageOptin          = "/mapi/optin/manage"
	DestOptInStates          = "/mapi/optin/states"
	DestLeaderboardSubscribe = "/mapi/leaderboard/subscribe"
)
