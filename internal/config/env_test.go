// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_CURRENCY_KEY": "GBP",
		"APP_LANGUAGE_KEY": "de",
		"APP_TOKEN_EXPIRY": "1h",
		"APP_SAMPLE":       "member",

		"ZIQNI_API_KEY":       "secret-key",
		"ZIQNI_SPACE":         "demo",
		"ZIQNI_MEMBER_REF_ID": "bob-1",

		"ADAPTER_TOKEN_URL":           "http://localhost/member-token",
		"ADAPTER_MEMBER_STREAM_URL":   "ws://localhost/ws",
		"ADAPTER_REQUEST_TIMEOUT":     "3s",
		"ADAPTER_REQUESTS_PER_SECOND": "2.5",

		"SESSION_CONNECT_TIMEOUT": "45s",
		"SESSION_LISTEN_FOR":      "1m",

		"STORAGE_DB_DSN":  "file:journal.db",
		"METRICS_ADDRESS": "127.0.0.1:9100",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "GBP", cfg.App.CurrencyKey)
	assert.Equal(t, "de", cfg.App.LanguageKey)
	assert.Equal(t, time.Hour, cfg.App.TokenExpiry)
	assert.Equal(t, "member", cfg.App.Sample)

	assert.Equal(t, "secret-key", cfg.Identity.APIKey)
	assert.Equal(t, "demo", cfg.Identity.Space)
	assert.Equal(t, "bob-1", cfg.Identity.MemberRefID)

	assert.Equal(t, "http://localhost/member-token", cfg.Adapter.TokenURL)
	assert.Equal(t, "ws://localhost/ws", cfg.Adapter.MemberStreamURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 2.5, cfg.Adapter.RequestsPerSecond, 1e-9)

	assert.Equal(t, 45*time.Second, cfg.Session.ConnectTimeout)
	assert.Equal(t, time.Minute, cfg.Session.ListenFor)

	assert.Equal(t, "file:journal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9100", cfg.Metrics.Address)
}

func TestParseEnv_NoVars(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SESSION_CONNECT_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars blanks every variable the config reads so values from the
// surrounding environment cannot leak into a test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_CURRENCY_KEY", "APP_LANGUAGE_KEY", "APP_TOKEN_EXPIRY", "APP_SAMPLE",
		"ZIQNI_API_KEY", "ZIQNI_SPACE", "ZIQNI_MEMBER_REF_ID",
		"ADAPTER_TOKEN_URL", "ADAPTER_ADMIN_STREAM_URL", "ADAPTER_MEMBER_STREAM_URL",
		"ADAPTER_REQUEST_TIMEOUT", "ADAPTER_TRANSPORT", "ADAPTER_REQUESTS_PER_SECOND",
		"ADAPTER_RECONNECT_INTERVAL",
		"SESSION_CONNECT_POLL_INTERVAL", "SESSION_CONNECT_TIMEOUT",
		"SESSION_SHUTDOWN_TIMEOUT", "SESSION_LISTEN_FOR",
		"STORAGE_DB_DSN", "METRICS_ADDRESS",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}
