// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import "fmt"

// Kind is one of the fixed categories of member callbacks.
type Kind int

const (
	EntityChanged Kind = iota + 1
	EntityStateChanged
	OptinStatus
	Notification
	LeaderboardUpdate
)

// Kinds lists every category in subscription order.
var Kinds = []Kind{EntityChanged, EntityStateChanged, OptinStatus, Notification, LeaderboardUpdate}

const callbackPrefix = "/user/queue/callbacks/"

// String returns the callback name of k.
func (k Kind) String() string {
	switch k {
	case EntityChanged:
		return "entityChanged"
	case EntityStateChanged:
		return "entityStateChanged"
	case OptinStatus:
		return "optinStatus"
	case Notification:
		return "notification"
	case LeaderboardUpdate:
		return "leaderboardUpdate"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Destination returns the push destination the platform delivers k to.
func (k Kind) Destination() string {
	return callbackPrefix + k.String()
}
