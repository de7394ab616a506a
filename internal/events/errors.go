// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"fmt"

	"github.com/ziqni/ziqni-go-samples/internal/app"
)

// ErrDecode is reported when a push payload cannot be decoded.
var ErrDecode = fmt.Errorf("%w: malformed push payload", app.ErrProtocol)
