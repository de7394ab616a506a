// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-sample", "admin",
		"-api-key", "abcdef",
		"-space", "demo",
		"-member", "m-1",
		"-transport", "rest",
		"-rps", "4",
		"-request-timeout", "2s",
		"-connect-timeout", "7s",
		"-listen", "15s",
		"-token-expiry", "30m",
		"-d", "file:deltas.db",
		"-metrics-address", ":9100",
		"-config", "/etc/samples.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.App.Sample)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenExpiry)
	assert.Equal(t, "abcdef", cfg.Identity.APIKey)
	assert.Equal(t, "demo", cfg.Identity.Space)
	assert.Equal(t, "m-1", cfg.Identity.MemberRefID)
	assert.Equal(t, TransportREST, cfg.Adapter.Transport)
	assert.InDelta(t, 4.0, cfg.Adapter.RequestsPerSecond, 1e-9)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 7*time.Second, cfg.Session.ConnectTimeout)
	assert.Equal(t, 15*time.Second, cfg.Session.ListenFor)
	assert.Equal(t, "file:deltas.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":9100", cfg.Metrics.Address)
	assert.Equal(t, "/etc/samples.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})
	assert.Error(t, err)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}
