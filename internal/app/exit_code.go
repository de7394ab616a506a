// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
)

// Process exit codes.
const (
	ExitOK                = 0
	ExitUnclassified      = 1
	ExitTransport         = 2
	ExitAuthentication    = 3
	ExitProtocol          = 4
	ExitConnectionTimeout = 5
	ExitInterrupted       = 130
)

// ExitCode maps err to the process exit code. Authentication is checked
// before transport because a failed token exchange can wrap both.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, ErrConnectionTimeout):
		return ExitConnectionTimeout
	case errors.Is(err, ErrAuthentication):
		return ExitAuthentication
	case errors.Is(err, ErrProtocol):
		return ExitProtocol
	case errors.Is(err, ErrTransport):
		return ExitTransport
	default:
		return ExitUnclassified
	}
}
