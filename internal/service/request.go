// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/ziqni/ziqni-go-samples/internal/stream"
	"github.com/ziqni/ziqni-go-samples/models"
)

// query sends body to destination and returns the items of the response
// envelope. An envelope reporting errors is returned as *stream.ProtocolError.
func query[T any](ctx context.Context, r Requester, destination string, body any) ([]T, error) {
	var resp models.Response[T]
	if err := r.Request(ctx, destination, body, &resp); err != nil {
		return nil, err
	}
	if resp.Failed() {
		code := 0
		if len(resp.Errors) > 0 {
			code = resp.Errors[0].ErrorCode
		}
		return nil, &stream.ProtocolError{
			Destination: destination,
			Code:        code,
			Message:     resp.Errors.String(),
		}
	}
	return resp.Items(), nil
}
