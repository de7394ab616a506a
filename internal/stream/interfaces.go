// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stream implements the persistent streaming connection both
// platform APIs are served over.
//
// A [Client] correlates requests with their responses by frame id, routes
// server pushes to subscribers by destination and reports connection state
// changes. The websocket implementation ([NewWebsocketClient]) dials in the
// background and redials after every disconnect until it is stopped.
package stream

import (
	"context"

	"github.com/ziqni/ziqni-go-samples/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/stream_client_mock.go -package=mock

// PushHandler receives push frames, and error frames that are not answers
// to a pending request, for a subscribed destination. Handlers run on the
// connection's reader goroutine in delivery order and must not block for
// long.
type PushHandler func(frame models.Frame)

// Client is a streaming connection to one of the platform APIs.
type Client interface {
	// Start begins connecting in the background and returns immediately.
	// It fails if the client was already started or stopped.
	Start(ctx context.Context) error

	// IsConnected reports whether the connection is currently open.
	IsConnected() bool

	// Connected returns a channel that is closed once the connection is
	// open. A new channel is handed out after every disconnect.
	Connected() <-chan struct{}

	// State returns the current connection state.
	State() State

	// States delivers connection state changes. The channel is closed when
	// the client stops.
	States() <-chan StateChange

	// Request sends body to destination and decodes the response body into
	// out, which may be nil. Error frames are returned as *ProtocolError.
	Request(ctx context.Context, destination string, body, out any) error

	// Subscribe registers h for pushes to destination. Handlers of one
	// destination run in registration order. The returned function removes
	// the registration and is safe to call more than once.
	Subscribe(destination string, h PushHandler) (unsubscribe func())

	// SetFaultHandler installs the function called with the recovered value
	// when a push handler panics.
	SetFaultHandler(fn func(recovered any))

	// Stop closes the connection, stops redialing, fails pending requests
	// with ErrClosed and closes the States channel. It is idempotent.
	Stop() error
}
