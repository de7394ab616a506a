// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrUnknownSample is returned for a sample kind other than admin or member.
	ErrUnknownSample = errors.New("unknown sample")

	// ErrNoMemberRefID is returned when a member run has no member reference id.
	ErrNoMemberRefID = errors.New("member reference id is empty")
)
