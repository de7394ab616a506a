// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Meta is the result summary attached to every platform response.
type Meta struct {
	TotalRecordsFound int64 `json:"totalRecordsFound"`
	ResultCount       int64 `json:"resultCount"`
	ErrorCount        int64 `json:"errorCount"`
	Skip              int64 `json:"skip"`
	Limit             int64 `json:"limit"`
}

// APIError is a single error entry of a response envelope.
type APIError struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
}

// Error implements the error interface.
func (e APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.ErrorCode, e.Message)
}

// APIErrors formats a list of envelope errors on one line.
type APIErrors []APIError

func (e APIErrors) String() string {
	parts := make([]string, 0, len(e))
	for _, item := range e {
		parts = append(parts, item.Error())
	}
	return "[" + strings.Join(parts, "; ") + "]"
}

// Response is the generic response envelope. The admin API returns items
// under "results" while the member API uses "data".
type Response[T any] struct {
	Meta    Meta      `json:"meta"`
	Results []T       `json:"results,omitempty"`
	Data    []T       `json:"data,omitempty"`
	Errors  APIErrors `json:"errors,omitempty"`
}

// Items returns whichever item list the envelope carries.
func (r Response[T]) Items() []T {
	if len(r.Results) > 0 {
		return r.Results
	}
	return r.Data
}

// Failed reports whether the envelope signals errors.
func (r Response[T]) Failed() bool {
	return r.Meta.ErrorCount > 0 || len(r.Errors) > 0
}

// Result is the minimal item returned by create operations.
type Result struct {
	ID         string `json:"id"`
	ExternalID string `json:"externalReference,omitempty"`
}
