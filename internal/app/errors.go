// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

// Error taxonomy. Package errors wrap one of these so callers and the exit
// code mapping can classify failures with errors.Is.
var (
	// ErrTransport covers network failures where no response was received.
	ErrTransport = errors.New("transport failure")

	// ErrAuthentication covers rejected credentials and failed token exchanges.
	ErrAuthentication = errors.New("authentication failure")

	// ErrProtocol covers error frames and response envelopes reporting errors.
	ErrProtocol = errors.New("protocol error")

	// ErrConnectionTimeout is returned when the streaming client does not
	// connect before the bootstrap deadline.
	ErrConnectionTimeout = errors.New("connection timeout")
)
