// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Competition groups one or more contests.
type Competition struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Status           string     `json:"status,omitempty"`
	StatusCode       int        `json:"statusCode"`
	ScheduledStartAt *time.Time `json:"scheduledStartDate,omitempty"`
	ScheduledEndAt   *time.Time `json:"scheduledEndDate,omitempty"`
}

// CompetitionRequest queries competitions visible to the member.
type CompetitionRequest struct {
	CompetitionFilter EntityFilter `json:"competitionFilter"`
}

// Contest is a single ranked round of a competition.
type Contest struct {
	ID            string `json:"id"`
	CompetitionID string `json:"competitionId"`
	Name          string `json:"name"`
	Status        string `json:"status,omitempty"`
	StatusCode    int    `json:"statusCode"`
}

// ContestRequest queries contests of the given competitions.
type ContestRequest struct {
	ContestFilter ContestFilter `json:"contestFilter"`
}

// ContestFilter narrows contests by their parent competition.
type ContestFilter struct {
	CompetitionIDs []string     `json:"competitionIds,omitempty"`
	IDs            []string     `json:"ids,omitempty"`
	StatusCode     *NumberRange `json:"statusCode,omitempty"`
	Skip           int          `json:"skip"`
	Limit          int          `json:"limit"`
}
