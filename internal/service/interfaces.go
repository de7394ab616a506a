// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the admin and member sample flows.
//
// Both flows issue their queries over a [Requester] (the session's
// streaming client) and log what the platform answers. [Samples] wires a
// flow to the token exchange and the session bootstrapper.
package service

import (
	"context"

	"github.com/ziqni/ziqni-go-samples/internal/session"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Requester sends one request and decodes its response. stream.Client
// satisfies it.
type Requester interface {
	Request(ctx context.Context, destination string, body, out any) error
}

// SessionBootstrapper opens streaming sessions. *session.Bootstrapper
// satisfies it.
type SessionBootstrapper interface {
	Bootstrap(ctx context.Context, opts session.Options) (*session.Session, error)
}
