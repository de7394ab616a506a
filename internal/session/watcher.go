// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"

	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/stream"
)

// StateWatcher logs the connection state changes of a streaming client. It
// implements workers.Worker.
type StateWatcher struct {
	client stream.Client
	logger *logger.Logger
}

// NewStateWatcher returns a watcher of client.
func NewStateWatcher(client stream.Client, log *logger.Logger) *StateWatcher {
	return &StateWatcher{client: client, logger: log}
}

// Run logs state changes until the client's state channel is closed or
// ctx ends.
func (w *StateWatcher) Run(ctx context.Context) error {
	states := w.client.States()
	for {
		select {
		case change, ok := <-states:
			if !ok {
				return nil
			}
			w.log(change)
		case <-ctx.Done():
			return nil
		}
	}
}

func (w *StateWatcher) log(change stream.StateChange) {
	ev := w.logger.Info()
	switch change.State {
	case stream.StateDisconnected:
		ev = w.logger.Warn()
	case stream.StateSevereFailure:
		ev = w.logger.Error()
	}
	ev.Str("state", change.State.String()).
		Time("at", change.At).
		Err(change.Err).
		Msg("streaming connection state changed")
}
