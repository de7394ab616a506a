// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidAdapterConfigs is returned when an endpoint, timeout, rate
	// or transport setting is missing or out of range.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidSessionConfigs is returned when a session timing is not
	// positive.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")

	// ErrInvalidAppConfigs is returned when the sample name or the token
	// parameters are invalid.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
