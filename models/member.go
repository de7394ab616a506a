// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Member is a platform member as returned by both APIs.
type Member struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	MemberRefID string   `json:"memberRefId"`
	MemberType  string   `json:"memberType,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// MemberRequest asks the member API for the authenticated member's profile.
type MemberRequest struct {
	IncludeFields []string `json:"includeFields,omitempty"`
}
