// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func TestParseExpiryFromJWT_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "member-1", "exp": exp.Unix()})

	got, err := ParseExpiryFromJWT(token)

	require.NoError(t, err)
	assert.True(t, exp.Equal(got), "want %v, got %v", exp, got)
}

func TestParseExpiryFromJWT_Expired(t *testing.T) {
	exp := time.Now().Add(-time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"exp": exp.Unix()})

	got, err := ParseExpiryFromJWT(token)

	require.NoError(t, err)
	assert.True(t, exp.Equal(got))
}

func TestParseExpiryFromJWT_NoClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "member-1"})

	_, err := ParseExpiryFromJWT(token)

	assert.ErrorIs(t, err, ErrNoExpiryClaim)
}

func TestParseExpiryFromJWT_Malformed(t *testing.T) {
	_, err := ParseExpiryFromJWT("not-a-jwt")
	assert.Error(t, err)
}
