// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP integration with the platform's member
// token endpoint.
//
// The primary abstraction is [TokenExchanger], which decouples the sample
// flows from the token transport. The package ships a resty implementation
// ([NewHTTPTokenExchanger]).
//
// Failures are reported as [*TokenExchangeError] so callers can use
// [errors.Is] against the application error taxonomy (app.ErrAuthentication
// when the endpoint answered, app.ErrTransport when it did not).
package adapter

import (
	"context"

	"github.com/ziqni/ziqni-go-samples/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_exchanger_mock.go -package=mock

// TokenExchanger exchanges a member reference id and an API key for a
// short-lived member session token.
type TokenExchanger interface {
	// FetchToken performs a single exchange. It never retries; the caller
	// decides whether to try again. On success the returned token is
	// non-empty.
	FetchToken(ctx context.Context, memberID, apiKey string) (models.SessionToken, error)
}
