// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import "net/http"

// MemberHeader returns the handshake headers of a member API connection.
func MemberHeader(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return h
}

// AdminHeader returns the handshake headers of an admin API connection.
func AdminHeader(apiKey, realm string) http.Header {
	h := http.Header{}
	h.Set("X-API-Key", apiKey)
	h.Set("X-Realm", realm)
	return h
}
