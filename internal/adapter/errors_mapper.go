// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for a 200 response and a *TokenExchangeError
// carrying the status and trimmed body otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &TokenExchangeError{
		StatusCode: resp.StatusCode(),
		Body:       body,
		Err:        ErrTokenRejected,
	}
}
