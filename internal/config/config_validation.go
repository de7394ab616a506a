// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/ziqni/ziqni-go-samples/models"
)

// validate checks the merged configuration. Credentials are not checked
// here; they are validated when a sample runs so the interactive prompts
// can collect them.
func (cfg *StructuredConfig) validate() error {
	switch models.SampleKind(cfg.App.Sample) {
	case "", models.SampleAdmin, models.SampleMember:
	default:
		return fmt.Errorf("%w: unknown sample %q", ErrInvalidAppConfigs, cfg.App.Sample)
	}

	if cfg.App.CurrencyKey == "" || cfg.App.LanguageKey == "" || cfg.App.TokenExpiry < 1 {
		return fmt.Errorf("%w: token parameters are required", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.TokenURL == "" || cfg.Adapter.AdminStreamURL == "" || cfg.Adapter.MemberStreamURL == "" {
		return fmt.Errorf("%w: endpoints are required", ErrInvalidAdapterConfigs)
	}

	switch cfg.Adapter.Transport {
	case TransportWebsocket, TransportREST:
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidAdapterConfigs, cfg.Adapter.Transport)
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.ReconnectInterval <= 0 || cfg.Adapter.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: timeouts and rate must be positive", ErrInvalidAdapterConfigs)
	}

	s := cfg.Session
	if s.ConnectPollInterval <= 0 || s.ConnectTimeout <= 0 || s.ShutdownTimeout <= 0 || s.ListenFor <= 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}

// Credentials returns the credentials configured for a non-interactive run.
func (cfg *StructuredConfig) Credentials() models.Credentials {
	return models.Credentials{
		Sample:      models.SampleKind(cfg.App.Sample),
		APIKey:      cfg.Identity.APIKey,
		Space:       cfg.Identity.Space,
		MemberRefID: cfg.Identity.MemberRefID,
	}
}
