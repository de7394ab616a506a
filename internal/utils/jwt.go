// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiryClaim is returned when a token carries no exp claim.
var ErrNoExpiryClaim = errors.New("token has no exp claim")

// ParseExpiryFromJWT reads the exp claim of tokenString without verifying
// the signature. Member tokens are signed by the platform and the harness
// has no key to verify them; the claim is only used to report the expiry.
func ParseExpiryFromJWT(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiryClaim
	}

	return exp.Time, nil
}
