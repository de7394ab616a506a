// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/ziqni/ziqni-go-samples/models"
)

// Built-in endpoint defaults.
const (
	DefaultTokenURL        = "https://member-api.ziqni.com/member-token"
	DefaultAdminStreamURL  = "wss://api.ziqni.com/ws"
	DefaultMemberStreamURL = "wss://member-api.ziqni.com/ws"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			CurrencyKey: "USD",
			LanguageKey: "en",
			TokenExpiry: models.DefaultTokenExpiry,
		},
		Adapter: Adapter{
			TokenURL:          DefaultTokenURL,
			AdminStreamURL:    DefaultAdminStreamURL,
			MemberStreamURL:   DefaultMemberStreamURL,
			RequestTimeout:    10 * time.Second,
			Transport:         TransportWebsocket,
			RequestsPerSecond: 10,
			ReconnectInterval: 2 * time.Second,
		},
		Session: Session{
			ConnectPollInterval: 500 * time.Millisecond,
			ConnectTimeout:      30 * time.Second,
			ShutdownTimeout:     5 * time.Second,
			ListenFor:           30 * time.Second,
		},
	}
}
