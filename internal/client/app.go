// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"

	"github.com/ziqni/ziqni-go-samples/internal/config"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/tui"
	"github.com/ziqni/ziqni-go-samples/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)

// App is the samples application.
type App struct {
	cfg     *config.StructuredConfig
	samples SampleRunner
	ui      Prompter
	logger  *logger.Logger
}

// NewApp returns the application. ui may be nil when cfg selects a
// non-interactive run.
func NewApp(cfg *config.StructuredConfig, samples SampleRunner, ui Prompter, log *logger.Logger) (*App, error) {
	if cfg == nil || samples == nil {
		return nil, ErrMissingDependency
	}
	if cfg.App.Sample == "" && ui == nil {
		return nil, ErrNoPrompter
	}
	return &App{cfg: cfg, samples: samples, ui: ui, logger: log}, nil
}

// Interactive reports whether Run shows the terminal menu.
func (a *App) Interactive() bool {
	return a.cfg.App.Sample == ""
}

// Run executes the configured sample once, or loops over the menu until the
// user exits or ctx ends. The interactive loop returns the error of the
// last run so the exit code reflects it.
func (a *App) Run(ctx context.Context) error {
	if !a.Interactive() {
		creds := a.cfg.Credentials()
		a.logger.Info().Str("sample", string(creds.Sample)).Msg("running configured sample")
		return a.samples.Run(ctx, creds)
	}

	var lastErr error
	for {
		kind, err := a.ui.ChooseSample(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return lastErr
		}
		if err != nil {
			return err
		}

		creds, err := a.ui.PromptCredentials(ctx, kind)
		switch {
		case errors.Is(err, tui.ErrPromptCancelled):
			continue
		case errors.Is(err, tui.ErrUserQuit):
			return lastErr
		case err != nil:
			return err
		}
		a.fillFromConfig(&creds)

		lastErr = a.samples.Run(ctx, creds)
		if lastErr != nil {
			a.logger.Err(lastErr).Str("func", "*App.Run").Str("sample", string(kind)).Msg("sample failed")
		}
		if ctx.Err() != nil {
			return errors.Join(lastErr, ctx.Err())
		}

		proceed, err := a.ui.Continue(ctx)
		if err != nil {
			return err
		}
		if !proceed {
			return lastErr
		}
	}
}

// fillFromConfig completes empty prompt answers with configured values.
func (a *App) fillFromConfig(creds *models.Credentials) {
	id := a.cfg.Identity
	if creds.Space == "" {
		creds.Space = id.Space
	}
	if creds.Sample == models.SampleMember && creds.MemberRefID == "" {
		creds.MemberRefID = id.MemberRefID
	}
}
