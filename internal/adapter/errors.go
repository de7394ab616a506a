// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/ziqni/ziqni-go-samples/internal/app"
)

var (
	// ErrTokenRejected is the cause of a non-200 token response.
	ErrTokenRejected = errors.New("member token rejected")

	// ErrEmptyToken is the cause of a 200 response without a token.
	ErrEmptyToken = errors.New("member token missing from response")
)

// TokenExchangeError describes a failed member token exchange.
//
// StatusCode is zero when no HTTP response was received.
type TokenExchangeError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TokenExchangeError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("member token exchange: %v", e.Err)
	}
	return fmt.Sprintf("member token exchange: http %d: %v", e.StatusCode, e.Err)
}

// Unwrap exposes both the taxonomy class and the underlying cause.
func (e *TokenExchangeError) Unwrap() []error {
	class := app.ErrAuthentication
	if e.StatusCode == 0 {
		class = app.ErrTransport
	}
	return []error{class, e.Err}
}
