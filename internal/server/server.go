// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/ziqni/ziqni-go-samples/internal/config"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/metrics"
	"github.com/ziqni/ziqni-go-samples/models"
)

const shutdownTimeout = 5 * time.Second

// Server is the diagnostics HTTP server.
type Server struct {
	server    *http.Server
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithBuildInfo sets the build metadata served on /version.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(s *Server) { s.buildInfo = info }
}

// NewServer builds the server for cfg.Address serving the collectors of m.
func NewServer(cfg config.Metrics, m *metrics.Metrics, logger *logger.Logger, opts ...Option) (*Server, error) {
	if cfg.Address == "" {
		return nil, ErrNoAddress
	}
	if m == nil {
		return nil, ErrNoRegistry
	}

	s := &Server{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	s.server = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.routes(m),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// Handler returns the server's router.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Run listens on the configured address and serves until ctx is done, then
// shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("metrics server listen: %w", err)
	}

	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", ln.Addr().String()).Msg("launching metrics server")
		errCh <- s.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics server shutdown: %w", err)
	}
	<-errCh

	s.logger.Info().Msg("metrics server shut down gracefully")
	return nil
}
