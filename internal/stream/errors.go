// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"errors"
	"fmt"

	"github.com/ziqni/ziqni-go-samples/internal/app"
)

var (
	// ErrClosed is returned by operations on a stopped client and by
	// requests still pending when the client stops.
	ErrClosed = errors.New("stream client closed")

	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("stream client already started")

	// ErrNotConnected is returned by requests issued while the connection
	// is down.
	ErrNotConnected = fmt.Errorf("stream not connected: %w", app.ErrTransport)

	// ErrDisconnected fails requests pending when the connection drops.
	ErrDisconnected = fmt.Errorf("stream disconnected: %w", app.ErrTransport)

	// ErrHandshakeRejected is the cause of StateSevereFailure.
	ErrHandshakeRejected = fmt.Errorf("stream handshake rejected: %w", app.ErrAuthentication)
)

// ProtocolError is an error frame returned by the platform for a request,
// or a response envelope reporting errors.
type ProtocolError struct {
	Destination string
	Code        int
	Message     string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: error %d: %s", e.Destination, e.Code, e.Message)
}

// Unwrap classifies every ProtocolError as app.ErrProtocol.
func (e *ProtocolError) Unwrap() error {
	return app.ErrProtocol
}
