// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoAddress is returned by NewServer when no listen address is set.
	ErrNoAddress = errors.New("no metrics address configured")

	// ErrNoRegistry is returned by NewServer when metrics are disabled.
	ErrNoRegistry = errors.New("no metrics registry")
)
