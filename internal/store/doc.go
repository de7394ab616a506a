// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists changed leaderboard ranks to a local SQLite
// journal. The journal is optional: it is only opened when a DSN is
// configured.
package store
