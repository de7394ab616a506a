// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SortOrder is the direction of a query sort.
type SortOrder string

const (
	SortAsc  SortOrder = "Asc"
	SortDesc SortOrder = "Desc"
)

// QuerySort orders query results by a single field.
type QuerySort struct {
	Field string    `json:"field"`
	Order SortOrder `json:"order"`
}

// QueryRequest is the generic admin query: a free-text match per field plus
// paging and sorting.
type QueryRequest struct {
	ShouldMatch []QueryMatch `json:"shouldMatch,omitempty"`
	Skip        int          `json:"skip"`
	Limit       int          `json:"limit"`
	SortBy      []QuerySort  `json:"sortBy,omitempty"`
}

// QueryMatch is a single "field contains value" clause.
type QueryMatch struct {
	QueryField string `json:"queryField"`
	QueryValue string `json:"queryValue"`
}

// NumberRange bounds numeric filters such as status codes.
type NumberRange struct {
	Gte int `json:"gte"`
	Lte int `json:"lte"`
}

// EntityFilter is the member API filter shared by awards, achievements,
// competitions, contests and rewards.
type EntityFilter struct {
	IDs          []string     `json:"ids,omitempty"`
	EntityIDs    []string     `json:"entityIds,omitempty"`
	StatusCode   *NumberRange `json:"statusCode,omitempty"`
	Skip         int          `json:"skip"`
	Limit        int          `json:"limit"`
	SortBy       []QuerySort  `json:"sortBy,omitempty"`
	CurrencyKey  string       `json:"currencyKey,omitempty"`
	LanguageKey  string       `json:"languageKey,omitempty"`
	EntityType   string       `json:"entityType,omitempty"`
	IncludeGraph bool         `json:"includeGraph,omitempty"`
}
