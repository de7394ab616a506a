// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses args into a partial configuration. Unset flags leave
// their fields zero so lower-priority sources can fill them.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("samples", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfg StructuredConfig

	fs.StringVar(&cfg.App.Sample, "sample", "", "Run one sample non-interactively: admin or member")
	fs.StringVar(&cfg.App.CurrencyKey, "currency", "", "Currency key sent with the member token request")
	fs.StringVar(&cfg.App.LanguageKey, "language", "", "Language key sent with the member token request")
	fs.DurationVar(&cfg.App.TokenExpiry, "token-expiry", 0, "Member token lifetime (e.g., 1h)")

	fs.StringVar(&cfg.Identity.APIKey, "api-key", "", "Space API key")
	fs.StringVar(&cfg.Identity.Space, "space", "", "Space name")
	fs.StringVar(&cfg.Identity.MemberRefID, "member", "", "Member reference id")

	fs.StringVar(&cfg.Adapter.TokenURL, "token-url", "", "Member token endpoint")
	fs.StringVar(&cfg.Adapter.AdminStreamURL, "admin-url", "", "Admin API websocket endpoint")
	fs.StringVar(&cfg.Adapter.MemberStreamURL, "member-url", "", "Member API websocket endpoint")
	fs.StringVar(&cfg.Adapter.Transport, "transport", "", "Transport mode: websocket or rest")
	fs.Float64Var(&cfg.Adapter.RequestsPerSecond, "rps", 0, "Outbound stream requests per second")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Token request and handshake timeout (e.g., 10s)")
	fs.DurationVar(&cfg.Adapter.ReconnectInterval, "reconnect-interval", 0, "Pause between stream dial attempts")

	fs.DurationVar(&cfg.Session.ConnectTimeout, "connect-timeout", 0, "Bootstrap deadline (e.g., 30s)")
	fs.DurationVar(&cfg.Session.ListenFor, "listen", 0, "How long the member sample listens for pushes")

	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Delta journal SQLite DSN")
	fs.StringVar(&cfg.Metrics.Address, "metrics-address", "", "Metrics endpoint host:port")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &cfg, nil
}
