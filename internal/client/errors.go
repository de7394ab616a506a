// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrMissingDependency is returned by NewApp without a config or a
	// sample runner.
	ErrMissingDependency = errors.New("client app: missing dependency")

	// ErrNoPrompter is returned by NewApp for an interactive run without a
	// terminal UI.
	ErrNoPrompter = errors.New("client app: interactive run needs a terminal UI")
)
