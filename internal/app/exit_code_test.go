// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "unclassified", err: errors.New("boom"), want: ExitUnclassified},
		{name: "transport", err: fmt.Errorf("dial: %w", ErrTransport), want: ExitTransport},
		{name: "authentication", err: fmt.Errorf("token: %w", ErrAuthentication), want: ExitAuthentication},
		{name: "protocol", err: fmt.Errorf("request: %w", ErrProtocol), want: ExitProtocol},
		{name: "timeout", err: fmt.Errorf("bootstrap: %w", ErrConnectionTimeout), want: ExitConnectionTimeout},
		{name: "interrupted", err: fmt.Errorf("run: %w", context.Canceled), want: ExitInterrupted},
		{name: "authentication wins over transport", err: errors.Join(ErrTransport, ErrAuthentication), want: ExitAuthentication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
