// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ziqni/ziqni-go-samples/internal/events"
	"github.com/ziqni/ziqni-go-samples/internal/leaderboard"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/mock"
	"github.com/ziqni/ziqni-go-samples/internal/session"
	"github.com/ziqni/ziqni-go-samples/models"
)

func newSession(client *mock.MockClient) *session.Session {
	return session.New(
		models.SampleMember,
		client,
		models.SessionToken{JWT: "jwt"},
		leaderboard.NewTracker(nil, logger.Nop()),
		logger.Nop(),
	)
}

// ── Subscribe ────────────────────────────────────────────────────────────────

func TestSession_SubscribeRegistersEveryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	var cancelled atomic.Int32
	for _, k := range events.Kinds {
		client.EXPECT().Subscribe(k.Destination(), gomock.Any()).Return(func() { cancelled.Add(1) })
	}

	sess := newSession(client)
	cancel := sess.Subscribe(events.Handlers{
		EntityChanged:      &events.Handler[models.EntityChanged]{},
		EntityStateChanged: &events.Handler[models.EntityStateChanged]{},
		OptinStatus:        &events.Handler[models.OptInStatus]{},
		Notification:       &events.Handler[models.Notification]{},
		LeaderboardUpdate:  &events.Handler[models.Leaderboard]{},
	})

	cancel()
	cancel()
	assert.Equal(t, int32(len(events.Kinds)), cancelled.Load())
}

// ── Shutdown ─────────────────────────────────────────────────────────────────

func TestSession_ShutdownReleasesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	var cancelled atomic.Int32
	client.EXPECT().Subscribe(events.LeaderboardUpdate.Destination(), gomock.Any()).
		Return(func() { cancelled.Add(1) })
	client.EXPECT().Stop().Return(nil).Times(1)

	sess := newSession(client)
	sess.Subscribe(events.Handlers{LeaderboardUpdate: &events.Handler[models.Leaderboard]{}})
	sess.Tracker().OnLeaderboardUpdate(context.Background(), "lb-1", []models.LeaderboardEntry{{Rank: 1, Score: 10}})
	require.Equal(t, 1, sess.Tracker().Len())

	require.NoError(t, sess.Shutdown(context.Background()))
	require.NoError(t, sess.Shutdown(context.Background()))

	assert.Equal(t, int32(1), cancelled.Load())
	assert.Zero(t, sess.Tracker().Len())
	select {
	case <-sess.Done():
	default:
		t.Fatal("Done not closed after Shutdown")
	}
}

func TestSession_ShutdownReturnsStopError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	boom := errors.New("boom")

	client.EXPECT().Stop().Return(boom)

	sess := newSession(client)

	assert.ErrorIs(t, sess.Shutdown(context.Background()), boom)
	assert.ErrorIs(t, sess.Shutdown(context.Background()), boom)
}

func TestSession_ShutdownBoundedByContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	release := make(chan struct{})
	client.EXPECT().Stop().DoAndReturn(func() error {
		<-release
		return nil
	})

	sess := newSession(client)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, sess.Shutdown(ctx), context.DeadlineExceeded)

	close(release)
	select {
	case <-sess.Done():
	case <-time.After(time.Second):
		t.Fatal("background stop did not complete")
	}
	assert.ErrorIs(t, sess.Shutdown(context.Background()), context.DeadlineExceeded)
}

func TestSession_CancelAfterShutdownIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	var cancelled atomic.Int32
	client.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(func() { cancelled.Add(1) })
	client.EXPECT().Stop().Return(nil)

	sess := newSession(client)
	cancel := sess.Subscribe(events.Handlers{Notification: &events.Handler[models.Notification]{}})

	require.NoError(t, sess.Shutdown(context.Background()))
	cancel()

	assert.Equal(t, int32(1), cancelled.Load())
}
