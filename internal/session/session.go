// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session opens and owns the streaming connection of one sample
// run.
//
// [Bootstrapper.Bootstrap] validates the options, starts the client and
// waits for it to connect. The returned [Session] is the only owner of the
// client, the member token and the leaderboard tracker until
// [Session.Shutdown].
package session

import (
	"context"
	"sync"

	"github.com/ziqni/ziqni-go-samples/internal/events"
	"github.com/ziqni/ziqni-go-samples/internal/leaderboard"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/stream"
	"github.com/ziqni/ziqni-go-samples/models"
)

// Session is a connected streaming session.
type Session struct {
	kind    models.SampleKind
	client  stream.Client
	token   models.SessionToken
	tracker *leaderboard.Tracker
	logger  *logger.Logger

	mu      sync.Mutex
	cancels []func()

	once        sync.Once
	shutdownErr error
	done        chan struct{}
}

// New wraps an already connected client.
func New(kind models.SampleKind, client stream.Client, token models.SessionToken, tracker *leaderboard.Tracker, log *logger.Logger) *Session {
	return &Session{
		kind:    kind,
		client:  client,
		token:   token,
		tracker: tracker,
		logger:  log,
		done:    make(chan struct{}),
	}
}

// Kind returns the API the session is connected to.
func (s *Session) Kind() models.SampleKind {
	return s.kind
}

// Client returns the streaming client.
func (s *Session) Client() stream.Client {
	return s.client
}

// Token returns the member token. It is zero for admin sessions.
func (s *Session) Token() models.SessionToken {
	return s.token
}

// Tracker returns the leaderboard tracker of the session.
func (s *Session) Tracker() *leaderboard.Tracker {
	return s.tracker
}

// Done is closed once Shutdown has completed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Subscribe registers h for the member push categories. The subscriptions
// are removed by the returned function or by Shutdown, whichever runs
// first.
func (s *Session) Subscribe(h events.Handlers) (cancel func()) {
	var once sync.Once
	unsub := events.Subscribe(s.client, h)
	cancel = func() { once.Do(unsub) }

	s.mu.Lock()
	s.cancels = append(s.cancels, cancel)
	s.mu.Unlock()

	return cancel
}

// Shutdown removes every subscription, stops the client and drops the
// leaderboard snapshots. Only the first call does any work; later calls
// return its result. When ctx ends before the client has stopped,
// Shutdown returns the context error and the stop completes in the
// background.
func (s *Session) Shutdown(ctx context.Context) error {
	s.once.Do(func() {
		stopped := make(chan error, 1)
		go func() {
			s.mu.Lock()
			cancels := s.cancels
			s.cancels = nil
			s.mu.Unlock()

			for _, cancel := range cancels {
				cancel()
			}
			err := s.client.Stop()
			s.tracker.Reset()
			close(s.done)
			stopped <- err
		}()

		select {
		case s.shutdownErr = <-stopped:
		case <-ctx.Done():
			s.shutdownErr = ctx.Err()
		}

		s.logger.Info().
			Str("api", string(s.kind)).
			Err(s.shutdownErr).
			Msg("session shut down")
	})
	return s.shutdownErr
}
