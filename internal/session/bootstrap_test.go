// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ziqni/ziqni-go-samples/internal/app"
	"github.com/ziqni/ziqni-go-samples/internal/config"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/mock"
	"github.com/ziqni/ziqni-go-samples/internal/session"
	"github.com/ziqni/ziqni-go-samples/internal/stream"
	"github.com/ziqni/ziqni-go-samples/models"
)

var testTimings = config.Session{
	ConnectPollInterval: 10 * time.Millisecond,
	ConnectTimeout:      200 * time.Millisecond,
}

func adminOpts() session.Options {
	return session.Options{
		Kind:      models.SampleAdmin,
		URL:       "ws://platform.test/ws",
		APIKey:    "api-key-123",
		Realm:     "demo",
		Transport: config.TransportWebsocket,
	}
}

func memberOpts() session.Options {
	o := adminOpts()
	o.Kind = models.SampleMember
	o.Token = models.SessionToken{JWT: "jwt", MemberID: "m-1"}
	return o
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func factoryFor(c stream.Client) session.ClientFactory {
	return func(session.Options) (stream.Client, error) { return c, nil }
}

func newBootstrapper(c stream.Client, buf *bytes.Buffer) *session.Bootstrapper {
	log := logger.Nop()
	if buf != nil {
		log = logger.NewWithWriter("test", buf)
	}
	return session.NewBootstrapper(testTimings, factoryFor(c), nil, log)
}

// ── Validation ───────────────────────────────────────────────────────────────

func TestBootstrap_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *session.Options)
		wantErr error
		wantIs  error
	}{
		{
			name:    "rest transport",
			mutate:  func(o *session.Options) { o.Transport = config.TransportREST },
			wantErr: session.ErrRESTTransportUnsupported,
		},
		{
			name:    "short api key",
			mutate:  func(o *session.Options) { o.APIKey = "abcd" },
			wantErr: session.ErrAPIKeyTooShort,
			wantIs:  app.ErrAuthentication,
		},
		{
			name:    "member without token",
			mutate:  func(o *session.Options) { o.Kind = models.SampleMember },
			wantErr: session.ErrNoMemberToken,
			wantIs:  app.ErrAuthentication,
		},
		{
			name:    "unknown kind",
			mutate:  func(o *session.Options) { o.Kind = "guest" },
			wantErr: session.ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factoryCalled := false
			b := session.NewBootstrapper(testTimings, func(session.Options) (stream.Client, error) {
				factoryCalled = true
				return nil, errors.New("unexpected")
			}, nil, logger.Nop())

			opts := adminOpts()
			tt.mutate(&opts)

			sess, err := b.Bootstrap(context.Background(), opts)

			assert.Nil(t, sess)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			assert.False(t, factoryCalled)
		})
	}
}

func TestBootstrap_RESTMessage(t *testing.T) {
	assert.Equal(t, "only socket based communication is supported", session.ErrRESTTransportUnsupported.Error())
}

func TestBootstrap_FiveCharacterKeyAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	client.EXPECT().SetFaultHandler(gomock.Any())
	client.EXPECT().Start(gomock.Any()).Return(nil)
	client.EXPECT().Connected().Return(closedChan())

	opts := adminOpts()
	opts.APIKey = "abcde"

	sess, err := newBootstrapper(client, nil).Bootstrap(context.Background(), opts)

	require.NoError(t, err)
	assert.NotNil(t, sess)
}

// ── Connect wait ─────────────────────────────────────────────────────────────

func TestBootstrap_Connected(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		client.EXPECT().SetFaultHandler(gomock.Any()),
		client.EXPECT().Start(ctx).Return(nil),
		client.EXPECT().Connected().Return(closedChan()),
	)

	opts := memberOpts()
	sess, err := newBootstrapper(client, nil).Bootstrap(ctx, opts)

	require.NoError(t, err)
	assert.Same(t, client, sess.Client())
	assert.Equal(t, opts.Token, sess.Token())
	assert.Equal(t, models.SampleMember, sess.Kind())
	require.NotNil(t, sess.Tracker())
	assert.Zero(t, sess.Tracker().Len())
}

func TestBootstrap_LogsProgressWhileWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	connected := make(chan struct{})
	time.AfterFunc(45*time.Millisecond, func() { close(connected) })

	client.EXPECT().SetFaultHandler(gomock.Any())
	client.EXPECT().Start(gomock.Any()).Return(nil)
	client.EXPECT().Connected().Return(connected)
	client.EXPECT().State().Return(stream.StateConnecting).AnyTimes()

	buf := &bytes.Buffer{}
	_, err := newBootstrapper(client, buf).Bootstrap(context.Background(), adminOpts())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "waiting for the streaming client to start [1]")
	assert.Contains(t, buf.String(), "waiting for the streaming client to start [2]")
}

func TestBootstrap_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	client.EXPECT().SetFaultHandler(gomock.Any())
	client.EXPECT().Start(gomock.Any()).Return(nil)
	client.EXPECT().Connected().Return(make(chan struct{}))
	client.EXPECT().State().Return(stream.StateConnecting).AnyTimes()
	client.EXPECT().Stop().Return(nil)

	start := time.Now()
	sess, err := newBootstrapper(client, nil).Bootstrap(context.Background(), adminOpts())

	assert.Nil(t, sess)
	assert.ErrorIs(t, err, app.ErrConnectionTimeout)
	assert.GreaterOrEqual(t, time.Since(start), testTimings.ConnectTimeout)
}

func TestBootstrap_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	client.EXPECT().SetFaultHandler(gomock.Any())
	client.EXPECT().Start(ctx).Return(nil)
	client.EXPECT().Connected().DoAndReturn(func() <-chan struct{} {
		cancel()
		return make(chan struct{})
	})
	client.EXPECT().State().Return(stream.StateConnecting).AnyTimes()
	client.EXPECT().Stop().Return(nil)

	sess, err := newBootstrapper(client, nil).Bootstrap(ctx, adminOpts())

	assert.Nil(t, sess)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBootstrap_HandshakeRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	client.EXPECT().SetFaultHandler(gomock.Any())
	client.EXPECT().Start(gomock.Any()).Return(nil)
	client.EXPECT().Connected().Return(make(chan struct{}))
	client.EXPECT().State().Return(stream.StateSevereFailure).AnyTimes()
	client.EXPECT().Stop().Return(nil)

	_, err := newBootstrapper(client, nil).Bootstrap(context.Background(), adminOpts())

	assert.ErrorIs(t, err, app.ErrAuthentication)
	assert.NotErrorIs(t, err, app.ErrConnectionTimeout)
}

func TestBootstrap_StartError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	client.EXPECT().SetFaultHandler(gomock.Any())
	client.EXPECT().Start(gomock.Any()).Return(stream.ErrClosed)

	_, err := newBootstrapper(client, nil).Bootstrap(context.Background(), adminOpts())

	assert.ErrorIs(t, err, stream.ErrClosed)
}

func TestBootstrap_FactoryError(t *testing.T) {
	boom := errors.New("boom")
	b := session.NewBootstrapper(testTimings, func(session.Options) (stream.Client, error) {
		return nil, boom
	}, nil, logger.Nop())

	_, err := b.Bootstrap(context.Background(), adminOpts())

	assert.ErrorIs(t, err, boom)
}

// TestBootstrap_FaultHandlerOnlyLogs verifies that the installed fault
// handler logs the recovered value and returns normally.
func TestBootstrap_FaultHandlerOnlyLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	var fault func(any)
	client.EXPECT().SetFaultHandler(gomock.Any()).Do(func(fn func(any)) { fault = fn })
	client.EXPECT().Start(gomock.Any()).Return(nil)
	client.EXPECT().Connected().Return(closedChan())

	buf := &bytes.Buffer{}
	_, err := newBootstrapper(client, buf).Bootstrap(context.Background(), adminOpts())
	require.NoError(t, err)
	require.NotNil(t, fault)

	assert.NotPanics(t, func() { fault("handler exploded") })
	assert.Contains(t, buf.String(), app.MsgUnhandledFault)
	assert.Contains(t, buf.String(), "handler exploded")
}

func TestNewBootstrapper_DefaultTimings(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	client.EXPECT().SetFaultHandler(gomock.Any())
	client.EXPECT().Start(gomock.Any()).Return(nil)
	client.EXPECT().Connected().Return(closedChan())

	b := session.NewBootstrapper(config.Session{}, factoryFor(client), nil, logger.Nop())
	_, err := b.Bootstrap(context.Background(), adminOpts())

	assert.NoError(t, err)
}

func TestBootstrap_WithJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	journal := mock.NewMockJournal(ctrl)

	client.EXPECT().SetFaultHandler(gomock.Any())
	client.EXPECT().Start(gomock.Any()).Return(nil)
	client.EXPECT().Connected().Return(closedChan())

	b := session.NewBootstrapper(testTimings, factoryFor(client), nil, logger.Nop(), session.WithJournal(journal))
	sess, err := b.Bootstrap(context.Background(), memberOpts())
	require.NoError(t, err)

	journal.EXPECT().Record(gomock.Any(), gomock.Len(1)).Return(nil)
	sess.Tracker().OnLeaderboardUpdate(context.Background(), "lb", []models.LeaderboardEntry{{Rank: 1, Score: 3}})
}
