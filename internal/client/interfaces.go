// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/ziqni/ziqni-go-samples/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// SampleRunner runs one sample with the given credentials.
// *service.Samples satisfies it.
type SampleRunner interface {
	Run(ctx context.Context, creds models.Credentials) error
}

// Prompter collects the user's choices between runs. *tui.TUI satisfies
// it.
type Prompter interface {
	ChooseSample(ctx context.Context) (models.SampleKind, error)
	PromptCredentials(ctx context.Context, kind models.SampleKind) (models.Credentials, error)
	Continue(ctx context.Context) (bool, error)
}
