// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziqni/ziqni-go-samples/internal/app"
	"github.com/ziqni/ziqni-go-samples/internal/stream"
	"github.com/ziqni/ziqni-go-samples/models"
)

// fakeSubscriber records registrations and delivers frames synchronously.
type fakeSubscriber struct {
	mu       sync.Mutex
	handlers map[string][]*stream.PushHandler
}

func newFakeSubscriber() *fakeSubscriber {
	return &fakeSubscriber{handlers: make(map[string][]*stream.PushHandler)}
}

func (f *fakeSubscriber) Subscribe(destination string, h stream.PushHandler) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	ref := &h
	f.handlers[destination] = append(f.handlers[destination], ref)
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		list := f.handlers[destination]
		for i, r := range list {
			if r == ref {
				f.handlers[destination] = append(list[:i], list[i+1:]...)
				break
			}
		}
		if len(f.handlers[destination]) == 0 {
			delete(f.handlers, destination)
		}
	}
}

func (f *fakeSubscriber) deliver(frame models.Frame) {
	f.mu.Lock()
	list := append([]*stream.PushHandler(nil), f.handlers[frame.Destination]...)
	f.mu.Unlock()
	for _, h := range list {
		(*h)(frame)
	}
}

func (f *fakeSubscriber) destinations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.handlers))
	for d := range f.handlers {
		out = append(out, d)
	}
	return out
}

func push(kind Kind, body any) models.Frame {
	b, _ := json.Marshal(body)
	return models.Frame{Type: models.FramePush, ID: "f-1", Destination: kind.Destination(), Body: b}
}

// ── Kind ─────────────────────────────────────────────────────────────────────

func TestKind_Destination(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EntityChanged, "/user/queue/callbacks/entityChanged"},
		{EntityStateChanged, "/user/queue/callbacks/entityStateChanged"},
		{OptinStatus, "/user/queue/callbacks/optinStatus"},
		{Notification, "/user/queue/callbacks/notification"},
		{LeaderboardUpdate, "/user/queue/callbacks/leaderboardUpdate"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Destination())
		})
	}
	assert.Len(t, Kinds, 5)
	assert.Equal(t, "kind(42)", Kind(42).String())
}

// ── Subscribe ────────────────────────────────────────────────────────────────

func TestSubscribe_OnlyNonNilSlots(t *testing.T) {
	sub := newFakeSubscriber()

	cancel := Subscribe(sub, Handlers{
		Notification:      &Handler[models.Notification]{},
		LeaderboardUpdate: &Handler[models.Leaderboard]{},
	})

	assert.ElementsMatch(t, []string{Notification.Destination(), LeaderboardUpdate.Destination()}, sub.destinations())

	cancel()
	assert.Empty(t, sub.destinations())
}

func TestSubscribe_AllSlots(t *testing.T) {
	sub := newFakeSubscriber()

	Subscribe(sub, Handlers{
		EntityChanged:      &Handler[models.EntityChanged]{},
		EntityStateChanged: &Handler[models.EntityStateChanged]{},
		OptinStatus:        &Handler[models.OptInStatus]{},
		Notification:       &Handler[models.Notification]{},
		LeaderboardUpdate:  &Handler[models.Leaderboard]{},
	})

	assert.Len(t, sub.destinations(), len(Kinds))
}

func TestSubscribe_DecodesPayload(t *testing.T) {
	sub := newFakeSubscriber()

	var (
		gotMeta Metadata
		got     models.Leaderboard
	)
	Subscribe(sub, Handlers{
		LeaderboardUpdate: &Handler[models.Leaderboard]{
			OnSuccess: func(meta Metadata, lb models.Leaderboard) {
				gotMeta, got = meta, lb
			},
			OnError: func(Metadata, error) { t.Fatal("unexpected error callback") },
		},
	})

	sub.deliver(push(LeaderboardUpdate, models.Leaderboard{
		ID:                 "lb-1",
		LeaderboardEntries: []models.LeaderboardEntry{{Rank: 1, Score: 10}},
	}))

	assert.Equal(t, "lb-1", got.ID)
	require.Len(t, got.LeaderboardEntries, 1)
	assert.Equal(t, 10.0, got.LeaderboardEntries[0].Score)
	assert.Equal(t, LeaderboardUpdate, gotMeta.Kind)
	assert.Equal(t, "f-1", gotMeta.FrameID)
	assert.Equal(t, LeaderboardUpdate.Destination(), gotMeta.Destination)
	assert.False(t, gotMeta.ReceivedAt.IsZero())
}

func TestSubscribe_DecodeFailure(t *testing.T) {
	sub := newFakeSubscriber()

	var gotErr error
	Subscribe(sub, Handlers{
		OptinStatus: &Handler[models.OptInStatus]{
			OnSuccess: func(Metadata, models.OptInStatus) { t.Fatal("unexpected success callback") },
			OnError:   func(_ Metadata, err error) { gotErr = err },
		},
	})

	sub.deliver(models.Frame{Type: models.FramePush, Destination: OptinStatus.Destination(), Body: json.RawMessage(`[1,2]`)})

	require.Error(t, gotErr)
	assert.ErrorIs(t, gotErr, ErrDecode)
	assert.ErrorIs(t, gotErr, app.ErrProtocol)
}

func TestSubscribe_ErrorFrame(t *testing.T) {
	sub := newFakeSubscriber()

	var gotErr error
	Subscribe(sub, Handlers{
		EntityChanged: &Handler[models.EntityChanged]{
			OnError: func(_ Metadata, err error) { gotErr = err },
		},
	})

	body, _ := json.Marshal(models.APIError{ErrorCode: 403, Message: "forbidden"})
	sub.deliver(models.Frame{Type: models.FrameError, Destination: EntityChanged.Destination(), Body: body})

	var pErr *stream.ProtocolError
	require.ErrorAs(t, gotErr, &pErr)
	assert.Equal(t, 403, pErr.Code)
	assert.Equal(t, "forbidden", pErr.Message)
}

func TestSubscribe_NilCallbacksAreSkipped(t *testing.T) {
	sub := newFakeSubscriber()
	Subscribe(sub, Handlers{Notification: &Handler[models.Notification]{}})

	assert.NotPanics(t, func() {
		sub.deliver(push(Notification, models.Notification{ID: "n-1"}))
		sub.deliver(models.Frame{Type: models.FramePush, Destination: Notification.Destination(), Body: json.RawMessage(`{`)})
	})
}

func TestSubscribe_DeliveryOrder(t *testing.T) {
	sub := newFakeSubscriber()

	var ids []string
	Subscribe(sub, Handlers{
		Notification: &Handler[models.Notification]{
			OnSuccess: func(_ Metadata, n models.Notification) { ids = append(ids, n.ID) },
		},
	})

	for _, id := range []string{"a", "b", "c"} {
		sub.deliver(push(Notification, models.Notification{ID: id}))
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids)
}
