// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ziqni/ziqni-go-samples/internal/config"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/utils"
	"github.com/ziqni/ziqni-go-samples/models"
)

// HTTPTokenExchanger is the resty implementation of [TokenExchanger].
type HTTPTokenExchanger struct {
	client   *utils.HTTPClient
	tokenURL string

	currencyKey string
	languageKey string
	expires     time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPTokenExchanger constructs an [HTTPTokenExchanger] posting to
// adapterCfg.TokenURL with adapterCfg.RequestTimeout. The currency, language
// and lifetime sent with every request come from appCfg.
//
// Returns an error if the token URL is empty or cannot be parsed.
func NewHTTPTokenExchanger(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (*HTTPTokenExchanger, error) {
	tokenURL, err := normalizeURL(adapterCfg.TokenURL)
	if err != nil {
		return nil, fmt.Errorf("invalid token url: %w", err)
	}

	return &HTTPTokenExchanger{
		client:      utils.NewHTTPClient(adapterCfg.RequestTimeout),
		tokenURL:    tokenURL,
		currencyKey: appCfg.CurrencyKey,
		languageKey: appCfg.LanguageKey,
		expires:     appCfg.TokenExpiry,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchToken implements [TokenExchanger]. It POSTs a
// [models.MemberTokenRequest] with isReferenceId set and returns the token
// from data.jwtToken of a 200 response.
//
// The token's expiry is read from its exp claim; tokens without one expire
// after the requested lifetime.
func (h *HTTPTokenExchanger) FetchToken(ctx context.Context, memberID, apiKey string) (models.SessionToken, error) {
	expires := h.expires
	if expires <= 0 {
		expires = models.DefaultTokenExpiry
	}

	reqBody := models.MemberTokenRequest{
		APIKey:        apiKey,
		Member:        memberID,
		IsReferenceID: true,
		CurrencyKey:   h.currencyKey,
		LanguageKey:   h.languageKey,
		Expires:       int(expires / time.Second),
	}

	h.logger.Debug().
		Str("member", memberID).
		Str("api_key", utils.MaskAPIKey(apiKey)).
		Str("url", h.tokenURL).
		Msg("requesting member token")

	requestedAt := h.now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post(h.tokenURL)
	if err != nil {
		return models.SessionToken{}, &TokenExchangeError{Err: fmt.Errorf("member token request: %w", err)}
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionToken{}, err
	}

	var body models.MemberTokenResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.SessionToken{}, &TokenExchangeError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
			Err:        fmt.Errorf("decode member token response: %w", err),
		}
	}
	if len(body.Errors) > 0 {
		return models.SessionToken{}, &TokenExchangeError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
			Err:        fmt.Errorf("%w: %s", ErrTokenRejected, models.APIErrors(body.Errors).String()),
		}
	}
	if body.Data == nil || body.Data.JWTToken == "" {
		return models.SessionToken{}, &TokenExchangeError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
			Err:        ErrEmptyToken,
		}
	}

	token := models.SessionToken{
		JWT:       body.Data.JWTToken,
		MemberID:  memberID,
		ExpiresAt: requestedAt.Add(expires),
	}
	if exp, err := utils.ParseExpiryFromJWT(token.JWT); err == nil {
		token.ExpiresAt = exp
	}

	h.logger.Info().
		Str("member", memberID).
		Time("expires_at", token.ExpiresAt).
		Msg("member token issued")

	return token, nil
}
