// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SampleKind selects which of the two client APIs a run exercises.
type SampleKind string

const (
	SampleAdmin  SampleKind = "admin"
	SampleMember SampleKind = "member"
)

// MinAPIKeyLength is the shortest API key accepted by the prompts and the
// session bootstrapper.
const MinAPIKeyLength = 5

// Credentials are collected from the user (or from configuration in
// non-interactive mode) before a sample runs.
type Credentials struct {
	Sample SampleKind

	// APIKey authenticates admin connections directly and is exchanged for a
	// member token on member runs.
	APIKey string

	// Space is the space (realm) name.
	Space string

	// MemberRefID is required for member runs only.
	MemberRefID string
}
