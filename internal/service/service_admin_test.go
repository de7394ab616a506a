// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/mock"
	"github.com/ziqni/ziqni-go-samples/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newAdminSample() *AdminSample {
	s := NewAdminSample(logger.Nop())
	s.now = func() time.Time { return fixedNow }
	return s
}

// ── GetSomeMembers ───────────────────────────────────────────────────────────

func TestAdminSample_GetSomeMembersQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mock.NewMockRequester(ctrl)

	want := models.QueryRequest{
		ShouldMatch: []models.QueryMatch{{QueryField: "name", QueryValue: "bob"}},
		Skip:        0,
		Limit:       3,
		SortBy:      []models.QuerySort{{Field: "_score", Order: models.SortDesc}},
	}
	r.EXPECT().Request(gomock.Any(), DestMembersQuery, want, gomock.Any()).
		DoAndReturn(reply([]models.Member{{Name: "bob", MemberRefID: "bob-1"}}))

	members, err := newAdminSample().GetSomeMembers(context.Background(), r)

	require.NoError(t, err)
	assert.Equal(t, []models.Member{{Name: "bob", MemberRefID: "bob-1"}}, members)
}

func TestAdminSample_GetSomeMembersError(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mock.NewMockRequester(ctrl)
	boom := errors.New("boom")

	r.EXPECT().Request(gomock.Any(), DestMembersQuery, gomock.Any(), gomock.Any()).Return(boom)

	_, err := newAdminSample().GetSomeMembers(context.Background(), r)

	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "error getting members")
}

// ── RegisterMemberEvent ──────────────────────────────────────────────────────

func TestAdminSample_RegisterMemberEventRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mock.NewMockRequester(ctrl)

	want := []models.CreateEventRequest{{
		MemberRefID:     "bob-1",
		Action:          "buy",
		EntityRefID:     "apples",
		SourceValue:     5.0,
		TransactionTime: fixedNow,
		CustomFields:    map[string][]string{"condition": {"fresh"}},
		EventRefID:      "1234",
		UnitOfMeasure:   "other",
	}}
	r.EXPECT().Request(gomock.Any(), DestEventsCreate, want, gomock.Any()).
		DoAndReturn(reply([]models.Result{{ID: "ev-1"}}))

	err := newAdminSample().RegisterMemberEvent(context.Background(), r, models.Member{Name: "bob", MemberRefID: "bob-1"})

	assert.NoError(t, err)
}

func TestAdminSample_RegisterMemberEventFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mock.NewMockRequester(ctrl)

	r.EXPECT().Request(gomock.Any(), DestEventsCreate, gomock.Any(), gomock.Any()).
		DoAndReturn(replyErrors(models.APIError{ErrorCode: 400, Message: "bad action"}))

	err := newAdminSample().RegisterMemberEvent(context.Background(), r, models.Member{MemberRefID: "bob-1"})

	assert.ErrorContains(t, err, "error registering event for bob-1")
	assert.ErrorContains(t, err, "bad action")
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestAdminSample_RunRegistersOneEventPerMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mock.NewMockRequester(ctrl)

	var registered []string
	record := func(_ context.Context, _ string, body, out any) error {
		registered = append(registered, body.([]models.CreateEventRequest)[0].MemberRefID)
		return reply([]models.Result{{ID: "ev"}})(nil, "", nil, out)
	}

	gomock.InOrder(
		r.EXPECT().Request(gomock.Any(), DestMembersQuery, gomock.Any(), gomock.Any()).
			DoAndReturn(reply([]models.Member{{MemberRefID: "a"}, {MemberRefID: "b"}})),
		r.EXPECT().Request(gomock.Any(), DestEventsCreate, gomock.Any(), gomock.Any()).
			DoAndReturn(record).Times(2),
	)

	require.NoError(t, newAdminSample().Run(context.Background(), r))
	assert.Equal(t, []string{"a", "b"}, registered)
}

func TestAdminSample_RunNoMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mock.NewMockRequester(ctrl)

	r.EXPECT().Request(gomock.Any(), DestMembersQuery, gomock.Any(), gomock.Any()).
		DoAndReturn(reply([]models.Member{}))

	assert.NoError(t, newAdminSample().Run(context.Background(), r))
}

func TestAdminSample_RunStopsAtFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mock.NewMockRequester(ctrl)
	boom := errors.New("boom")

	gomock.InOrder(
		r.EXPECT().Request(gomock.Any(), DestMembersQuery, gomock.Any(), gomock.Any()).
			DoAndReturn(reply([]models.Member{{MemberRefID: "a"}, {MemberRefID: "b"}})),
		r.EXPECT().Request(gomock.Any(), DestEventsCreate, gomock.Any(), gomock.Any()).Return(boom),
	)

	err := newAdminSample().Run(context.Background(), r)

	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "error registering event for a")
}
