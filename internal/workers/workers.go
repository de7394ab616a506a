// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
)

// Workers runs a fixed set of workers concurrently.
type Workers struct {
	workers []Worker
}

// NewWorkers returns an aggregate of ws. Nil workers are skipped.
func NewWorkers(ws ...Worker) *Workers {
	list := make([]Worker, 0, len(ws))
	for _, w := range ws {
		if w != nil {
			list = append(list, w)
		}
	}
	return &Workers{workers: list}
}

// Run starts every worker in its own goroutine and waits for all of them to
// return. The errors of failed workers are joined.
func (w *Workers) Run(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			if err := worker.Run(ctx); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(worker)
	}

	wg.Wait()
	return errors.Join(errs...)
}

// Len returns the number of workers in the aggregate.
func (w *Workers) Len() int {
	return len(w.workers)
}
