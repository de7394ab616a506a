// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// FrameType discriminates streaming frames.
type FrameType string

const (
	FrameRequest  FrameType = "request"
	FrameResponse FrameType = "response"
	FrameError    FrameType = "error"
	FramePush     FrameType = "push"
)

// Frame is the envelope of every message exchanged over the streaming
// connection.
//
// Requests carry a client-generated ID which the platform echoes on the
// matching response or error frame. Push frames are server-initiated and
// are routed by Destination.
type Frame struct {
	Type        FrameType         `json:"type"`
	ID          string            `json:"id,omitempty"`
	Destination string            `json:"destination,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Body        json.RawMessage   `json:"body,omitempty"`
}
