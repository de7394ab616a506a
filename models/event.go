// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CreateEventRequest registers a single member action with the admin API.
type CreateEventRequest struct {
	MemberID        string              `json:"memberId,omitempty"`
	MemberRefID     string              `json:"memberRefId"`
	BatchID         string              `json:"batchId,omitempty"`
	EventRefID      string              `json:"eventRefId"`
	EntityRefID     string              `json:"entityRefId"`
	Action          string              `json:"action"`
	SourceValue     float64             `json:"sourceValue"`
	TransactionTime time.Time           `json:"transactionTimestamp"`
	UnitOfMeasure   string              `json:"unitOfMeasure,omitempty"`
	CustomFields    map[string][]string `json:"customFields,omitempty"`
	Tags            []string            `json:"tags,omitempty"`
}
