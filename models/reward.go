// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Reward is a prize attached to an entity (contest, achievement).
type Reward struct {
	ID          string  `json:"id"`
	EntityID    string  `json:"entityId"`
	Name        string  `json:"name"`
	RewardRank  string  `json:"rewardRank,omitempty"`
	RewardValue float64 `json:"rewardValue"`
}

// RewardRequest queries rewards of the given entities.
type RewardRequest struct {
	RewardFilter EntityFilter `json:"rewardFilter"`
}

// Award is a reward issued to the member.
type Award struct {
	ID         string `json:"id"`
	RewardID   string `json:"rewardId"`
	EntityID   string `json:"entityId,omitempty"`
	Status     string `json:"status,omitempty"`
	StatusCode int    `json:"statusCode"`
}

// AwardRequest queries the member's awards.
type AwardRequest struct {
	AwardFilter EntityFilter `json:"awardFilter"`
}
