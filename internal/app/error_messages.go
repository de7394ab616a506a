// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the shared error taxonomy of the samples harness,
// the process exit codes derived from it and the human-readable messages
// written into log entries and prompts.
package app

const (
	// MsgOnlySocketSupported is logged when the REST transport is requested.
	MsgOnlySocketSupported = "only socket based communication is supported"

	// MsgWaitingForStream is logged on every bootstrap progress tick.
	MsgWaitingForStream = "waiting for the streaming client to start"

	// MsgUnhandledFault is logged by the fault handler installed on every
	// streaming client when a push handler panics.
	MsgUnhandledFault = "unhandled exception caught"

	// MsgAPIKeyTooShort is shown by the credential prompt when the entered
	// API key is shorter than the accepted minimum.
	MsgAPIKeyTooShort = "API key must be at least 5 characters"

	// MsgContinuePrompt is shown after each sample run.
	MsgContinuePrompt = "press esc to exit, any other key to continue"
)
