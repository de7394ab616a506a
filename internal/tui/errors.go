// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned when the user leaves the harness.
	ErrUserQuit = errors.New("user quit")

	// ErrPromptCancelled is returned when the user backs out of a prompt.
	ErrPromptCancelled = errors.New("prompt cancelled")
)
