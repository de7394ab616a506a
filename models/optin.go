// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Opt-in entity types and actions understood by the member API.
const (
	EntityTypeAchievement = "Achievement"
	EntityTypeCompetition = "Competition"
	EntityTypeContest     = "Contest"

	OptinActionJoin  = "join"
	OptinActionLeave = "leave"
)

// ManageOptinRequest joins or leaves an opt-in-gated entity.
type ManageOptinRequest struct {
	EntityID   string `json:"entityId"`
	EntityType string `json:"entityType"`
	Action     string `json:"action"`
}

// OptInStatesRequest lists the member's opt-in states for an entity type.
type OptInStatesRequest struct {
	OptinStatesFilter EntityFilter `json:"optinStatesFilter"`
}

// OptInState is the member's opt-in status for a single entity.
type OptInState struct {
	EntityID   string `json:"entityId"`
	EntityType string `json:"entityType"`
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
}
