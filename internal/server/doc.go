// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the optional diagnostics HTTP server of the samples
// harness: Prometheus metrics on /metrics and a liveness report on
// /healthz.
//
// The server implements workers.Worker and shuts down gracefully when its
// context is cancelled.
package server
