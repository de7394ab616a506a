// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import "time"

// State is the connection state of a Client.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateConnected
	StateDisconnected

	// StateSevereFailure means the platform refused the connection
	// handshake. The client does not redial after it.
	StateSevereFailure
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	case StateSevereFailure:
		return "severe-failure"
	default:
		return "unknown"
	}
}

// StateChange is one connection state transition. Err carries the cause of
// a disconnect or failure.
type StateChange struct {
	State State
	Err   error
	At    time.Time
}
