// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/ziqni/ziqni-go-samples/internal/app"
	"github.com/ziqni/ziqni-go-samples/internal/config"
	"github.com/ziqni/ziqni-go-samples/internal/leaderboard"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/metrics"
	"github.com/ziqni/ziqni-go-samples/internal/stream"
	"github.com/ziqni/ziqni-go-samples/internal/utils"
	"github.com/ziqni/ziqni-go-samples/models"
)

const (
	defaultPollInterval   = 500 * time.Millisecond
	defaultConnectTimeout = 30 * time.Second
)

// Bootstrapper opens streaming sessions.
type Bootstrapper struct {
	factory        ClientFactory
	journal        leaderboard.Journal
	metrics        *metrics.Metrics
	logger         *logger.Logger
	pollInterval   time.Duration
	connectTimeout time.Duration
}

// Option configures a Bootstrapper.
type Option func(*Bootstrapper)

// WithJournal makes every session's tracker record changed ranks to j.
func WithJournal(j leaderboard.Journal) Option {
	return func(b *Bootstrapper) { b.journal = j }
}

// NewBootstrapper returns a Bootstrapper building clients with factory.
// Zero timings in cfg fall back to a 500ms progress interval and a 30s
// deadline.
func NewBootstrapper(cfg config.Session, factory ClientFactory, m *metrics.Metrics, log *logger.Logger, opts ...Option) *Bootstrapper {
	b := &Bootstrapper{
		factory:        factory,
		metrics:        m,
		logger:         log,
		pollInterval:   cfg.ConnectPollInterval,
		connectTimeout: cfg.ConnectTimeout,
	}
	if b.pollInterval <= 0 {
		b.pollInterval = defaultPollInterval
	}
	if b.connectTimeout <= 0 {
		b.connectTimeout = defaultConnectTimeout
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Bootstrap validates opts, starts a streaming client and waits until it
// is connected. It fails with app.ErrConnectionTimeout when the deadline
// passes first, with the context error when ctx ends first and with an
// app.ErrAuthentication error when the platform refuses the handshake. The
// client is stopped on every failure after it was started.
func (b *Bootstrapper) Bootstrap(ctx context.Context, opts Options) (*Session, error) {
	log := b.logger

	if err := validate(opts); err != nil {
		log.Err(err).Str("func", "*Bootstrapper.Bootstrap").Msg("invalid session options")
		return nil, err
	}

	client, err := b.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("build streaming client: %w", err)
	}

	client.SetFaultHandler(func(recovered any) {
		log.Error().
			Str("func", "*Bootstrapper.Bootstrap").
			Str("api", string(opts.Kind)).
			Interface("panic", recovered).
			Msg(app.MsgUnhandledFault)
	})

	if err = client.Start(ctx); err != nil {
		return nil, fmt.Errorf("start streaming client: %w", err)
	}

	if err = b.waitConnected(ctx, client); err != nil {
		_ = client.Stop()
		return nil, err
	}

	runID, _ := utils.GetRunIDFromContext(ctx)
	log.Info().
		Str("api", string(opts.Kind)).
		Str("run_id", runID).
		Msg("streaming client connected")

	var trackerOpts []leaderboard.Option
	if b.journal != nil {
		trackerOpts = append(trackerOpts, leaderboard.WithJournal(b.journal))
	}

	return New(opts.Kind, client, opts.Token, leaderboard.NewTracker(b.metrics, log, trackerOpts...), log), nil
}

func (b *Bootstrapper) waitConnected(ctx context.Context, client stream.Client) error {
	connected := client.Connected()

	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	deadline := time.NewTimer(b.connectTimeout)
	defer deadline.Stop()

	for n := 1; ; n++ {
		select {
		case <-connected:
			return nil
		case <-ticker.C:
			if client.State() == stream.StateSevereFailure {
				return fmt.Errorf("%w: streaming handshake refused", app.ErrAuthentication)
			}
			b.logger.Info().Msgf("%s [%d]", app.MsgWaitingForStream, n)
		case <-deadline.C:
			return fmt.Errorf("%w: not connected after %s", app.ErrConnectionTimeout, b.connectTimeout)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func validate(opts Options) error {
	if opts.Transport != "" && opts.Transport != config.TransportWebsocket {
		return ErrRESTTransportUnsupported
	}
	if len(opts.APIKey) < models.MinAPIKeyLength {
		return ErrAPIKeyTooShort
	}
	switch opts.Kind {
	case models.SampleAdmin:
	case models.SampleMember:
		if opts.Token.JWT == "" {
			return ErrNoMemberToken
		}
	default:
		return ErrUnknownKind
	}
	return nil
}
