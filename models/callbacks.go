// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EntityChanged is pushed when an entity the member can see is created,
// updated or deleted.
type EntityChanged struct {
	EntityID   string `json:"entityId"`
	EntityType string `json:"entityType"`
	Action     string `json:"action"`
}

// EntityStateChanged is pushed when an entity moves between lifecycle states.
type EntityStateChanged struct {
	EntityID      string `json:"entityId"`
	EntityType    string `json:"entityType"`
	CurrentState  int    `json:"currentState"`
	PreviousState int    `json:"previousState"`
}

// OptInStatus is pushed when the member's opt-in state changes.
type OptInStatus struct {
	EntityID   string `json:"entityId"`
	EntityType string `json:"entityType"`
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
}

// Notification is a free-form message pushed to the member.
type Notification struct {
	ID          string `json:"id"`
	MessageType string `json:"messageType"`
	Subject     string `json:"subject,omitempty"`
	Body        string `json:"body,omitempty"`
}
