// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// countingWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type countingWorker struct {
	runCount atomic.Int32
	err      error
}

func (m *countingWorker) Run(context.Context) error {
	m.runCount.Add(1)
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}

	ws := NewWorkers(w1, w2, w3)
	err := ws.Run(context.Background())

	assert.NoError(t, err)
	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_NilWorkersSkipped(t *testing.T) {
	ws := NewWorkers(nil, &countingWorker{}, nil)
	assert.Equal(t, 1, ws.Len())
}

func TestWorkers_Run_JoinsErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	err := NewWorkers(&countingWorker{err: errA}, &countingWorker{}, &countingWorker{err: errB}).
		Run(context.Background())

	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

// TestWorkers_Run_Concurrent verifies that blocking workers run side by
// side and all stop when the context is cancelled.
func TestWorkers_Run_Concurrent(t *testing.T) {
	var started atomic.Int32
	blocking := WorkerFunc(func(ctx context.Context) error {
		started.Add(1)
		<-ctx.Done()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewWorkers(blocking, blocking).Run(ctx) }()

	assert.Eventually(t, func() bool { return started.Load() == 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after cancel")
	}
}
