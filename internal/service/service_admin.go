// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/models"
)

// Parameters of the example admin queries.
const (
	memberQueryValue = "bob"
	memberQueryLimit = 3

	eventAction      = "buy"
	eventEntityRefID = "apples"
	eventSourceValue = 5.0
	eventRefID       = "1234"
	eventUnit        = "other"
)

// AdminSample runs the admin API example: find members, then register an
// event for each of them.
type AdminSample struct {
	logger *logger.Logger
	now    func() time.Time
}

// NewAdminSample returns the admin example flow.
func NewAdminSample(log *logger.Logger) *AdminSample {
	return &AdminSample{logger: log, now: time.Now}
}

// Run finds members and registers one event per member. Registration
// stops at the first failure.
func (s *AdminSample) Run(ctx context.Context, r Requester) error {
	members, err := s.GetSomeMembers(ctx, r)
	if err != nil {
		return err
	}
	for _, m := range members {
		if err := s.RegisterMemberEvent(ctx, r, m); err != nil {
			return err
		}
	}
	return nil
}

// GetSomeMembers queries up to three members whose name matches "bob",
// most relevant first.
func (s *AdminSample) GetSomeMembers(ctx context.Context, r Requester) ([]models.Member, error) {
	s.logger.Info().Msg("getting members...")

	req := models.QueryRequest{
		ShouldMatch: []models.QueryMatch{{QueryField: "name", QueryValue: memberQueryValue}},
		Skip:        0,
		Limit:       memberQueryLimit,
		SortBy:      []models.QuerySort{{Field: "_score", Order: models.SortDesc}},
	}

	members, err := query[models.Member](ctx, r, DestMembersQuery, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*AdminSample.GetSomeMembers").Msg("error getting members")
		return nil, fmt.Errorf("error getting members: %w", err)
	}

	s.logger.Info().Int("count", len(members)).Msg("members found")
	for _, m := range members {
		s.logger.Info().Str("member", m.Name).Str("member_ref_id", m.MemberRefID).Msg("member")
	}
	return members, nil
}

// RegisterMemberEvent records that member bought five fresh apples.
func (s *AdminSample) RegisterMemberEvent(ctx context.Context, r Requester, member models.Member) error {
	s.logger.Info().Str("member", member.Name).Msg("registering event for member")

	req := []models.CreateEventRequest{{
		MemberRefID:     member.MemberRefID,
		Action:          eventAction,
		EntityRefID:     eventEntityRefID,
		SourceValue:     eventSourceValue,
		TransactionTime: s.now().UTC(),
		CustomFields:    map[string][]string{"condition": {"fresh"}},
		EventRefID:      eventRefID,
		UnitOfMeasure:   eventUnit,
	}}

	results, err := query[models.Result](ctx, r, DestEventsCreate, req)
	if err != nil {
		s.logger.Err(err).
			Str("func", "*AdminSample.RegisterMemberEvent").
			Str("member_ref_id", member.MemberRefID).
			Msg("error registering event")
		return fmt.Errorf("error registering event for %s: %w", member.MemberRefID, err)
	}

	if len(results) > 0 {
		s.logger.Info().Str("event_id", results[0].ID).Msg("event registered")
	}
	return nil
}
