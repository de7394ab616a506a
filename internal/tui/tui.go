// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive screens of the samples harness:
// the sample menu, the credential prompt and the continue prompt. Each
// screen runs as its own Bubble Tea program so that sample logs are written
// to the terminal between screens.
package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/models"
)

// TUI runs the interactive screens.
type TUI struct {
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// input and output override the terminal; tests use them.
	input  io.Reader
	output io.Writer
}

// New returns the terminal UI.
func New(buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{buildInfo: buildInfo, logger: log}
}

// ChooseSample shows the sample menu. It returns ErrUserQuit when the user
// picks Exit or presses ctrl+c.
func (t *TUI) ChooseSample(ctx context.Context) (models.SampleKind, error) {
	final, err := t.run(ctx, NewMenuModel(t.buildInfo), tea.WithAltScreen())
	if err != nil {
		return "", err
	}

	menu, ok := final.(*MenuModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if menu.quit {
		return "", ErrUserQuit
	}
	return menu.chosen, nil
}

// PromptCredentials asks for the credentials of a kind run. It returns
// ErrPromptCancelled when the user presses esc and ErrUserQuit on ctrl+c.
func (t *TUI) PromptCredentials(ctx context.Context, kind models.SampleKind) (models.Credentials, error) {
	final, err := t.run(ctx, NewCredentialsModel(kind))
	if err != nil {
		return models.Credentials{}, err
	}

	form, ok := final.(*CredentialsModel)
	if !ok {
		return models.Credentials{}, tea.ErrProgramKilled
	}
	switch {
	case form.quit:
		return models.Credentials{}, ErrUserQuit
	case form.cancelled:
		return models.Credentials{}, ErrPromptCancelled
	}
	return form.Credentials(), nil
}

// Continue shows the continue prompt and reports whether the user wants
// another run.
func (t *TUI) Continue(ctx context.Context) (bool, error) {
	final, err := t.run(ctx, NewContinueModel())
	if err != nil {
		return false, err
	}

	prompt, ok := final.(*ContinueModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return prompt.proceed, nil
}

func (t *TUI) run(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	opts = append(opts, tea.WithContext(ctx))
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}
	if t.output != nil {
		opts = append(opts, tea.WithOutput(t.output))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.run").Msg("terminal program failed")
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return final, nil
}
