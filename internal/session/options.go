// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"github.com/ziqni/ziqni-go-samples/internal/config"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/metrics"
	"github.com/ziqni/ziqni-go-samples/internal/stream"
	"github.com/ziqni/ziqni-go-samples/models"
)

// Options describe one streaming session.
type Options struct {
	// Kind selects the admin or the member API.
	Kind models.SampleKind

	// URL is the streaming endpoint.
	URL string

	// APIKey authenticates admin sessions. Member sessions carry it too; it
	// is validated but not sent.
	APIKey string

	// Realm is the space name sent with admin handshakes.
	Realm string

	// Token authorizes member sessions.
	Token models.SessionToken

	// Transport is the requested transport mode. Only
	// config.TransportWebsocket is served.
	Transport string
}

// ClientFactory builds the streaming client of a session.
type ClientFactory func(opts Options) (stream.Client, error)

// AdminOptions returns the options of an admin session for creds.
func AdminOptions(cfg config.Adapter, creds models.Credentials) Options {
	return Options{
		Kind:      models.SampleAdmin,
		URL:       cfg.AdminStreamURL,
		APIKey:    creds.APIKey,
		Realm:     creds.Space,
		Transport: cfg.Transport,
	}
}

// MemberOptions returns the options of a member session authorized by token.
func MemberOptions(cfg config.Adapter, creds models.Credentials, token models.SessionToken) Options {
	return Options{
		Kind:      models.SampleMember,
		URL:       cfg.MemberStreamURL,
		APIKey:    creds.APIKey,
		Realm:     creds.Space,
		Token:     token,
		Transport: cfg.Transport,
	}
}

// NewWebsocketFactory returns a ClientFactory building websocket clients
// with the handshake headers of the requested API.
func NewWebsocketFactory(cfg config.Adapter, m *metrics.Metrics, log *logger.Logger) ClientFactory {
	return func(opts Options) (stream.Client, error) {
		if opts.URL == "" {
			return nil, ErrNoStreamURL
		}

		streamCfg := stream.Config{
			URL:               opts.URL,
			HandshakeTimeout:  cfg.RequestTimeout,
			ReconnectInterval: cfg.ReconnectInterval,
			RequestsPerSecond: cfg.RequestsPerSecond,
		}
		switch opts.Kind {
		case models.SampleAdmin:
			streamCfg.Header = stream.AdminHeader(opts.APIKey, opts.Realm)
		case models.SampleMember:
			streamCfg.Header = stream.MemberHeader(opts.Token.JWT)
		default:
			return nil, ErrUnknownKind
		}

		l := &logger.Logger{Logger: log.With().Str("api", string(opts.Kind)).Logger()}

		return stream.NewWebsocketClient(streamCfg, m, l), nil
	}
}
