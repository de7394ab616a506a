// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultTokenExpiry is the member token lifetime requested when the
// configuration does not specify one.
const DefaultTokenExpiry = 3600 * time.Second

// MemberTokenRequest is the JSON body sent to the member token endpoint.
type MemberTokenRequest struct {
	// APIKey is the space API key the token is requested with.
	APIKey string `json:"apiKey"`

	// Member is the member identifier. It is interpreted as the caller's own
	// reference id when IsReferenceID is true.
	Member string `json:"member"`

	// IsReferenceID marks Member as an external reference id rather than a
	// platform-assigned member id.
	IsReferenceID bool `json:"isReferenceId"`

	// CurrencyKey is the currency used for reward values shown to the member.
	CurrencyKey string `json:"currencyKey"`

	// LanguageKey selects translated content for the member.
	LanguageKey string `json:"languageKey"`

	// Expires is the token lifetime in seconds.
	Expires int `json:"expires"`
}

// MemberTokenResponse is the JSON body returned by the member token endpoint.
type MemberTokenResponse struct {
	Data   *MemberTokenData `json:"data,omitempty"`
	Errors []APIError       `json:"errors,omitempty"`
}

// MemberTokenData holds the issued member token.
type MemberTokenData struct {
	JWTToken string `json:"jwtToken"`
}

// SessionToken is a short-lived member token owned by a single session.
// It is never persisted.
type SessionToken struct {
	// JWT is the compact token string passed as the streaming connection's
	// authorization token.
	JWT string

	// MemberID is the member reference id the token was issued for.
	MemberID string

	// ExpiresAt is read from the token's exp claim when present, otherwise
	// it is derived from the requested lifetime.
	ExpiresAt time.Time
}

// String returns the compact token string.
func (t SessionToken) String() string {
	return t.JWT
}

// Expired reports whether the token is past its expiry at now.
func (t SessionToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}
