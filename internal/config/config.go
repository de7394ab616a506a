// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Transport modes accepted by the session bootstrapper.
const (
	TransportWebsocket = "websocket"
	TransportREST      = "rest"
)

// StructuredConfig is the top-level configuration container for the
// samples harness. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an
// optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds run-wide settings: the member token parameters and the
	// sample selected for non-interactive runs.
	App App `envPrefix:"APP_"`

	// Identity holds credentials used when no prompt is shown.
	Identity Identity `envPrefix:"ZIQNI_"`

	// Adapter holds endpoints and limits of the token exchange and the
	// streaming connection.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds bootstrap and listen timings.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds the optional leaderboard delta journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Metrics holds the optional metrics endpoint settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups the member token parameters and the run mode.
type App struct {
	// CurrencyKey is sent with the member token request.
	CurrencyKey string `env:"CURRENCY_KEY"`

	// LanguageKey is sent with the member token request.
	LanguageKey string `env:"LANGUAGE_KEY"`

	// TokenExpiry is the requested member token lifetime.
	TokenExpiry time.Duration `env:"TOKEN_EXPIRY"`

	// Sample selects a non-interactive run ("admin" or "member"). Empty
	// starts the interactive menu.
	Sample string `env:"SAMPLE"`
}

// Identity holds the credentials a non-interactive run uses instead of the
// prompts.
type Identity struct {
	APIKey      string `env:"API_KEY"`
	Space       string `env:"SPACE"`
	MemberRefID string `env:"MEMBER_REF_ID"`
}

// Adapter groups endpoints and limits of the external platform.
type Adapter struct {
	// TokenURL is the member token exchange endpoint.
	TokenURL string `env:"TOKEN_URL"`

	// AdminStreamURL is the websocket endpoint of the admin API.
	AdminStreamURL string `env:"ADMIN_STREAM_URL"`

	// MemberStreamURL is the websocket endpoint of the member API.
	MemberStreamURL string `env:"MEMBER_STREAM_URL"`

	// RequestTimeout bounds the token exchange and the websocket handshake.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Transport is "websocket" or "rest". Only websocket is served.
	Transport string `env:"TRANSPORT"`

	// RequestsPerSecond limits outbound stream requests.
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND"`

	// ReconnectInterval is the pause between stream dial attempts.
	ReconnectInterval time.Duration `env:"RECONNECT_INTERVAL"`
}

// Session groups the bootstrap and listen timings.
type Session struct {
	// ConnectPollInterval is the bootstrap progress log interval.
	ConnectPollInterval time.Duration `env:"CONNECT_POLL_INTERVAL"`

	// ConnectTimeout is the bootstrap deadline.
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// ShutdownTimeout bounds session shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// ListenFor is how long the member sample keeps receiving pushes after
	// its queries complete.
	ListenFor time.Duration `env:"LISTEN_FOR"`
}

// Storage groups the configuration of the optional delta journal.
type Storage struct {
	// DB holds the journal database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains the journal database connection settings.
type DB struct {
	// DSN is the SQLite data source name. Empty disables the journal.
	DSN string `env:"DSN"`
}

// Metrics contains the metrics endpoint settings.
type Metrics struct {
	// Address is the host:port the /metrics and /healthz routes are served
	// on. Empty disables the server.
	Address string `env:"ADDRESS"`
}

// GetStructuredConfig loads, merges and validates the configuration from
// the environment, the given command-line arguments (without the program
// name), the optional JSON file and the defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building config: %w", err)
	}

	return cfg, nil
}
