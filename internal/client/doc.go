// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the samples application runtime.
//
// It runs a single sample when one is configured, and otherwise loops over
// the terminal menu, the credential prompt and the continue prompt.
package client
