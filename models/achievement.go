// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConstraintOptinRequired marks entities members must opt in to before
// they can progress.
const ConstraintOptinRequired = "optinRequiredForEntrants"

// Achievement is a member-facing achievement definition.
type Achievement struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	StatusCode  int      `json:"statusCode"`
	Constraints []string `json:"constraints,omitempty"`
}

// RequiresOptin reports whether the achievement carries the opt-in constraint.
func (a Achievement) RequiresOptin() bool {
	for _, c := range a.Constraints {
		if c == ConstraintOptinRequired {
			return true
		}
	}
	return false
}

// AchievementRequest queries achievements visible to the member.
type AchievementRequest struct {
	AchievementFilter EntityFilter `json:"achievementFilter"`
}
