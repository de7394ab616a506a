// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding.
// Durations use [Duration] so they can be written as "30s" or as
// nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		CurrencyKey string   `json:"currency_key"`
		LanguageKey string   `json:"language_key"`
		TokenExpiry Duration `json:"token_expiry"`
		Sample      string   `json:"sample"`
	} `json:"app,omitempty"`

	Identity struct {
		APIKey      string `json:"api_key"`
		Space       string `json:"space"`
		MemberRefID string `json:"member_ref_id"`
	} `json:"identity,omitempty"`

	Adapter struct {
		TokenURL          string   `json:"token_url"`
		AdminStreamURL    string   `json:"admin_stream_url"`
		MemberStreamURL   string   `json:"member_stream_url"`
		RequestTimeout    Duration `json:"request_timeout"`
		Transport         string   `json:"transport"`
		RequestsPerSecond float64  `json:"requests_per_second"`
		ReconnectInterval Duration `json:"reconnect_interval"`
	} `json:"adapter,omitempty"`

	Session struct {
		ConnectPollInterval Duration `json:"connect_poll_interval"`
		ConnectTimeout      Duration `json:"connect_timeout"`
		ShutdownTimeout     Duration `json:"shutdown_timeout"`
		ListenFor           Duration `json:"listen_for"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Metrics struct {
		Address string `json:"address"`
	} `json:"metrics,omitempty"`
}

// parseJSON reads the JSON configuration file at jsonFilePath.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			CurrencyKey: jsonCfg.App.CurrencyKey,
			LanguageKey: jsonCfg.App.LanguageKey,
			TokenExpiry: time.Duration(jsonCfg.App.TokenExpiry),
			Sample:      jsonCfg.App.Sample,
		},
		Identity: Identity{
			APIKey:      jsonCfg.Identity.APIKey,
			Space:       jsonCfg.Identity.Space,
			MemberRefID: jsonCfg.Identity.MemberRefID,
		},
		Adapter: Adapter{
			TokenURL:          jsonCfg.Adapter.TokenURL,
			AdminStreamURL:    jsonCfg.Adapter.AdminStreamURL,
			MemberStreamURL:   jsonCfg.Adapter.MemberStreamURL,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
			Transport:         jsonCfg.Adapter.Transport,
			RequestsPerSecond: jsonCfg.Adapter.RequestsPerSecond,
			ReconnectInterval: time.Duration(jsonCfg.Adapter.ReconnectInterval),
		},
		Session: Session{
			ConnectPollInterval: time.Duration(jsonCfg.Session.ConnectPollInterval),
			ConnectTimeout:      time.Duration(jsonCfg.Session.ConnectTimeout),
			ShutdownTimeout:     time.Duration(jsonCfg.Session.ShutdownTimeout),
			ListenFor:           time.Duration(jsonCfg.Session.ListenFor),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Metrics: Metrics{Address: jsonCfg.Metrics.Address},
	}

	return cfg, nil
}

// Duration is a time.Duration that decodes from either a Go duration string
// ("1m30s") or a number of nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
