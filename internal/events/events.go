// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events subscribes typed callbacks to the member push categories.
//
// Each category has its own payload type and handler slot in [Handlers].
// Payload decode failures and error frames delivered to a category are
// reported through the slot's OnError.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ziqni/ziqni-go-samples/internal/stream"
	"github.com/ziqni/ziqni-go-samples/models"
)

// Subscriber registers push handlers by destination. stream.Client
// satisfies it.
type Subscriber interface {
	Subscribe(destination string, h stream.PushHandler) (unsubscribe func())
}

// Metadata describes the push a callback is invoked for.
type Metadata struct {
	Kind        Kind
	Destination string
	FrameID     string
	Headers     map[string]string
	ReceivedAt  time.Time
}

// Handler is the callback pair of one category. Either function may be nil.
type Handler[T any] struct {
	OnSuccess func(meta Metadata, payload T)
	OnError   func(meta Metadata, err error)
}

// Handlers holds one optional slot per category. Nil slots are not
// subscribed.
type Handlers struct {
	EntityChanged      *Handler[models.EntityChanged]
	EntityStateChanged *Handler[models.EntityStateChanged]
	OptinStatus        *Handler[models.OptInStatus]
	Notification       *Handler[models.Notification]
	LeaderboardUpdate  *Handler[models.Leaderboard]
}

// Subscribe registers every non-nil slot of h with sub and returns a
// function that removes all of them. Handlers run on the subscriber's
// delivery goroutine and must not block for long.
func Subscribe(sub Subscriber, h Handlers) (cancel func()) {
	var unsubs []func()
	add := func(kind Kind, ph stream.PushHandler) {
		unsubs = append(unsubs, sub.Subscribe(kind.Destination(), ph))
	}

	if h.EntityChanged != nil {
		add(EntityChanged, dispatch(EntityChanged, h.EntityChanged))
	}
	if h.EntityStateChanged != nil {
		add(EntityStateChanged, dispatch(EntityStateChanged, h.EntityStateChanged))
	}
	if h.OptinStatus != nil {
		add(OptinStatus, dispatch(OptinStatus, h.OptinStatus))
	}
	if h.Notification != nil {
		add(Notification, dispatch(Notification, h.Notification))
	}
	if h.LeaderboardUpdate != nil {
		add(LeaderboardUpdate, dispatch(LeaderboardUpdate, h.LeaderboardUpdate))
	}

	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

func dispatch[T any](kind Kind, h *Handler[T]) stream.PushHandler {
	return func(frame models.Frame) {
		meta := Metadata{
			Kind:        kind,
			Destination: frame.Destination,
			FrameID:     frame.ID,
			Headers:     frame.Headers,
			ReceivedAt:  time.Now(),
		}

		if frame.Type == models.FrameError {
			h.fail(meta, stream.DecodeProtocolError(frame.Destination, frame.Body))
			return
		}

		var payload T
		if err := json.Unmarshal(frame.Body, &payload); err != nil {
			h.fail(meta, fmt.Errorf("%w: decode %s payload: %w", ErrDecode, kind, err))
			return
		}
		if h.OnSuccess != nil {
			h.OnSuccess(meta, payload)
		}
	}
}

func (h *Handler[T]) fail(meta Metadata, err error) {
	if h.OnError != nil {
		h.OnError(meta, err)
	}
}
