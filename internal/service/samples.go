// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ziqni/ziqni-go-samples/internal/adapter"
	"github.com/ziqni/ziqni-go-samples/internal/config"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/session"
	"github.com/ziqni/ziqni-go-samples/internal/utils"
	"github.com/ziqni/ziqni-go-samples/internal/workers"
	"github.com/ziqni/ziqni-go-samples/models"
)

const defaultShutdownTimeout = 5 * time.Second

// Samples runs the admin and member examples end to end.
type Samples struct {
	adapterCfg config.Adapter
	sessionCfg config.Session

	tokens   adapter.TokenExchanger
	sessions SessionBootstrapper
	admin    *AdminSample
	member   *MemberSample
	ids      *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewSamples wires the example flows to the token exchange and the
// session bootstrapper.
func NewSamples(cfg *config.StructuredConfig, tokens adapter.TokenExchanger, sessions SessionBootstrapper, log *logger.Logger) *Samples {
	return &Samples{
		adapterCfg: cfg.Adapter,
		sessionCfg: cfg.Session,
		tokens:     tokens,
		sessions:   sessions,
		admin:      NewAdminSample(log),
		member:     NewMemberSample(log),
		ids:        utils.NewUUIDGenerator(),
		logger:     log,
	}
}

// Run executes the sample selected by creds.Sample under a fresh run id.
func (s *Samples) Run(ctx context.Context, creds models.Credentials) error {
	runID := s.ids.Generate()
	ctx = utils.WithRunID(ctx, runID)

	s.logger.Info().
		Str("run_id", runID).
		Str("sample", string(creds.Sample)).
		Str("api_key", utils.MaskAPIKey(creds.APIKey)).
		Str("space", creds.Space).
		Msg("running sample")

	switch creds.Sample {
	case models.SampleAdmin:
		return s.RunAdmin(ctx, creds)
	case models.SampleMember:
		return s.RunMember(ctx, creds)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSample, creds.Sample)
	}
}

// RunAdmin connects to the admin API with creds, finds members and
// registers an event for each.
func (s *Samples) RunAdmin(ctx context.Context, creds models.Credentials) error {
	s.logger.Info().Msg("running admin sample...")

	sess, err := s.sessions.Bootstrap(ctx, session.AdminOptions(s.adapterCfg, creds))
	if err != nil {
		return fmt.Errorf("admin session: %w", err)
	}
	stopWatch := s.watch(ctx, sess)
	defer stopWatch()
	defer s.shutdown(ctx, sess)

	s.logger.Info().Msg("admin API connected")

	return s.admin.Run(ctx, sess.Client())
}

// RunMember exchanges creds for a member token, connects to the member
// API, subscribes to every push category and runs the example queries. It
// then keeps receiving pushes for the configured listen window or until
// ctx ends.
func (s *Samples) RunMember(ctx context.Context, creds models.Credentials) error {
	s.logger.Info().Msg("running member sample...")

	if creds.MemberRefID == "" {
		return ErrNoMemberRefID
	}

	token, err := s.tokens.FetchToken(ctx, creds.MemberRefID, creds.APIKey)
	if err != nil {
		return fmt.Errorf("member token: %w", err)
	}

	sess, err := s.sessions.Bootstrap(ctx, session.MemberOptions(s.adapterCfg, creds, token))
	if err != nil {
		return fmt.Errorf("member session: %w", err)
	}
	stopWatch := s.watch(ctx, sess)
	defer stopWatch()
	defer s.shutdown(ctx, sess)

	s.logger.Info().Msg("member API connected")

	sess.Subscribe(s.member.Handlers(ctx, sess.Tracker()))

	queryErr := s.member.RunQueries(ctx, sess.Client())

	if s.sessionCfg.ListenFor > 0 {
		s.logger.Info().Dur("listen_for", s.sessionCfg.ListenFor).Msg("listening for pushes")
		timer := time.NewTimer(s.sessionCfg.ListenFor)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return errors.Join(queryErr, ctx.Err())
		}
	}

	return queryErr
}

// watch logs the connection state of sess until the returned function is
// called.
func (s *Samples) watch(ctx context.Context, sess *session.Session) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = workers.NewWorkers(session.NewStateWatcher(sess.Client(), s.logger)).Run(ctx)
	}()

	return func() {
		cancel()
		<-done
	}
}

func (s *Samples) shutdown(ctx context.Context, sess *session.Session) {
	timeout := s.sessionCfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := sess.Shutdown(ctx); err != nil {
		s.logger.Err(err).Str("func", "*Samples.shutdown").Msg("session shutdown failed")
	}
}
