// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ziqni/ziqni-go-samples/internal/metrics"
	"github.com/ziqni/ziqni-go-samples/internal/utils"
)

type healthResponse struct {
	Status string `json:"status"`
	Stream string `json:"stream"`
}

func (s *Server) routes(m *metrics.Metrics) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withTraceID)
	router.Use(s.withLogging)

	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, healthResponse{Status: "ok", Stream: m.ConnectionState()}, http.StatusOK)
	})
	router.Get("/version", s.getVersion)

	return router
}
