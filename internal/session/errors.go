// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"

	"github.com/ziqni/ziqni-go-samples/internal/app"
)

var (
	// ErrRESTTransportUnsupported is returned for any transport other than
	// websocket.
	ErrRESTTransportUnsupported = errors.New(app.MsgOnlySocketSupported)

	// ErrAPIKeyTooShort is returned for API keys shorter than
	// models.MinAPIKeyLength.
	ErrAPIKeyTooShort = fmt.Errorf("%w: %s", app.ErrAuthentication, app.MsgAPIKeyTooShort)

	// ErrNoMemberToken is returned when a member session is requested
	// without a member token.
	ErrNoMemberToken = fmt.Errorf("%w: member token is empty", app.ErrAuthentication)

	// ErrUnknownKind is returned when Options.Kind is neither admin nor member.
	ErrUnknownKind = errors.New("unknown api kind")

	// ErrNoStreamURL is returned when Options.URL is empty.
	ErrNoStreamURL = errors.New("stream url is empty")
)
