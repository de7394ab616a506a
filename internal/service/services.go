// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/ziqni/ziqni-go-samples/internal/adapter"
	"github.com/ziqni/ziqni-go-samples/internal/config"
	"github.com/ziqni/ziqni-go-samples/internal/leaderboard"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/metrics"
	"github.com/ziqni/ziqni-go-samples/internal/session"
)

// Services holds the wired sample runner.
type Services struct {
	Samples *Samples
}

// NewServices builds the production wiring: the resty token exchange, the
// websocket session bootstrapper and, when journal is non-nil, the delta
// journal of every session's leaderboard tracker.
func NewServices(cfg *config.StructuredConfig, m *metrics.Metrics, journal leaderboard.Journal, log *logger.Logger) (*Services, error) {
	tokens, err := adapter.NewHTTPTokenExchanger(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, err
	}

	var opts []session.Option
	if journal != nil {
		opts = append(opts, session.WithJournal(journal))
	}
	bootstrapper := session.NewBootstrapper(cfg.Session, session.NewWebsocketFactory(cfg.Adapter, m, log), m, log, opts...)

	return &Services{
		Samples: NewSamples(cfg, tokens, bootstrapper, log),
	}, nil
}
