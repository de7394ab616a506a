// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ziqni/ziqni-go-samples/internal/events"
	"github.com/ziqni/ziqni-go-samples/internal/leaderboard"
	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/models"
)

// Parameters of the example member queries.
const (
	awardsCurrency  = "GBP"
	awardsLimit     = 5
	rewardsLimit    = 10
	competitionLang = "de"

	leaderboardTopRanks   = 10
	leaderboardRanksAbove = 5
	leaderboardRanksBelow = 5
)

var (
	awardStatus       = models.NumberRange{Gte: 16, Lte: 60}
	achievementStatus = models.NumberRange{Gte: 20, Lte: 30}
	competitionStatus = models.NumberRange{Gte: 20, Lte: 30}
)

// MemberSample runs the member API example queries.
type MemberSample struct {
	logger *logger.Logger
}

// NewMemberSample returns the member example flow.
func NewMemberSample(log *logger.Logger) *MemberSample {
	return &MemberSample{logger: log}
}

// Handlers returns callbacks logging every push category. Leaderboard
// updates are fed to tracker.
func (s *MemberSample) Handlers(ctx context.Context, tracker *leaderboard.Tracker) events.Handlers {
	onError := func(meta events.Metadata, err error) {
		s.logger.Err(err).
			Str("kind", meta.Kind.String()).
			Str("destination", meta.Destination).
			Msg("callback error")
	}

	return events.Handlers{
		EntityChanged: &events.Handler[models.EntityChanged]{
			OnSuccess: func(meta events.Metadata, p models.EntityChanged) {
				s.logger.Info().Str("kind", meta.Kind.String()).Interface("payload", p).Msg("entity changed")
			},
			OnError: onError,
		},
		EntityStateChanged: &events.Handler[models.EntityStateChanged]{
			OnSuccess: func(meta events.Metadata, p models.EntityStateChanged) {
				s.logger.Info().Str("kind", meta.Kind.String()).Interface("payload", p).Msg("entity state changed")
			},
			OnError: onError,
		},
		OptinStatus: &events.Handler[models.OptInStatus]{
			OnSuccess: func(meta events.Metadata, p models.OptInStatus) {
				s.logger.Info().Str("kind", meta.Kind.String()).Interface("payload", p).Msg("opt-in status")
			},
			OnError: onError,
		},
		Notification: &events.Handler[models.Notification]{
			OnSuccess: func(meta events.Metadata, p models.Notification) {
				s.logger.Info().Str("kind", meta.Kind.String()).Interface("payload", p).Msg("notification")
			},
			OnError: onError,
		},
		LeaderboardUpdate: &events.Handler[models.Leaderboard]{
			OnSuccess: func(_ events.Metadata, lb models.Leaderboard) {
				s.logger.Info().Str("leaderboard_id", lb.ID).Msg("leaderboard update")
				tracker.OnLeaderboardUpdate(ctx, lb.ID, lb.LeaderboardEntries)
			},
			OnError: onError,
		},
	}
}

// RunQueries issues the example queries in order. A failed query is logged
// and does not stop the ones that do not depend on it; every failure is
// part of the returned error.
func (s *MemberSample) RunQueries(ctx context.Context, r Requester) error {
	var errs []error
	fail := func(prefix string, err error) {
		s.logger.Err(err).Msg(prefix)
		errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
	}

	if _, err := s.GetMember(ctx, r); err != nil {
		fail("failed to get member", err)
	}

	if _, err := s.GetAwards(ctx, r); err != nil {
		fail("failed to get awards", err)
	}

	achievements, err := s.GetAchievements(ctx, r)
	if err != nil {
		fail("failed to get achievements", err)
	}
	for _, a := range achievements {
		if !a.RequiresOptin() {
			continue
		}
		if err := s.OptIn(ctx, r, a.ID, models.EntityTypeAchievement); err != nil {
			fail(fmt.Sprintf("failed to opt in to achievement %s [%s]", a.ID, a.Name), err)
		}
	}

	competitions, err := s.GetCompetitions(ctx, r)
	if err != nil {
		fail("failed to get competitions", err)
	}
	if len(competitions) > 0 {
		competition := competitions[0]
		contests, err := s.GetContests(ctx, r, competition.ID)
		if err != nil {
			fail(fmt.Sprintf("failed to get contests for competition %s", competition.ID), err)
		}
		if len(contests) > 0 {
			contest := contests[0]
			if _, err := s.GetRewards(ctx, r, contest.ID); err != nil {
				fail(fmt.Sprintf("failed to get rewards for contest %s", contest.ID), err)
			}
			if err := s.SubscribeToLeaderboard(ctx, r, contest.ID); err != nil {
				fail(fmt.Sprintf("failed to subscribe to leaderboard of contest %s", contest.ID), err)
			}
		}
	}

	if _, err := s.GetOptInStates(ctx, r); err != nil {
		fail("failed to get opt-in states", err)
	}

	return errors.Join(errs...)
}

// GetMember returns the connected member with its reference id.
func (s *MemberSample) GetMember(ctx context.Context, r Requester) (models.Member, error) {
	members, err := query[models.Member](ctx, r, DestMember, models.MemberRequest{IncludeFields: []string{"memberRefId"}})
	if err != nil {
		return models.Member{}, err
	}
	if len(members) == 0 {
		return models.Member{}, nil
	}
	s.logger.Info().Interface("member", members[0]).Msg("member")
	return members[0], nil
}

// GetAwards returns up to five awards with a status between 16 and 60.
func (s *MemberSample) GetAwards(ctx context.Context, r Requester) ([]models.Award, error) {
	status := awardStatus
	awards, err := query[models.Award](ctx, r, DestAwards, models.AwardRequest{AwardFilter: models.EntityFilter{
		StatusCode:  &status,
		Limit:       awardsLimit,
		CurrencyKey: awardsCurrency,
	}})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Interface("awards", awards).Msg("awards")
	return awards, nil
}

// GetAchievements returns the achievements with a status between 20 and 30.
func (s *MemberSample) GetAchievements(ctx context.Context, r Requester) ([]models.Achievement, error) {
	status := achievementStatus
	achievements, err := query[models.Achievement](ctx, r, DestAchievements, models.AchievementRequest{
		AchievementFilter: models.EntityFilter{StatusCode: &status},
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Interface("achievements", achievements).Msg("achievements")
	return achievements, nil
}

// OptIn joins the entity identified by entityID.
func (s *MemberSample) OptIn(ctx context.Context, r Requester, entityID, entityType string) error {
	states, err := query[models.OptInState](ctx, r, DestManageOptin, models.ManageOptinRequest{
		EntityID:   entityID,
		EntityType: entityType,
		Action:     models.OptinActionJoin,
	})
	if err != nil {
		return err
	}
	s.logger.Info().Str("entity_id", entityID).Interface("states", states).Msg("opted in")
	return nil
}

// GetCompetitions returns the competitions with a status between 20 and
// 30, localized in German.
func (s *MemberSample) GetCompetitions(ctx context.Context, r Requester) ([]models.Competition, error) {
	status := competitionStatus
	competitions, err := query[models.Competition](ctx, r, DestCompetitions, models.CompetitionRequest{
		CompetitionFilter: models.EntityFilter{StatusCode: &status, LanguageKey: competitionLang},
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Interface("competitions", competitions).Msg("competitions")
	return competitions, nil
}

// GetContests returns the contests of competitionID.
func (s *MemberSample) GetContests(ctx context.Context, r Requester, competitionID string) ([]models.Contest, error) {
	contests, err := query[models.Contest](ctx, r, DestContests, models.ContestRequest{
		ContestFilter: models.ContestFilter{CompetitionIDs: []string{competitionID}},
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Interface("contests", contests).Msg("contests")
	return contests, nil
}

// GetRewards returns up to ten rewards of contestID.
func (s *MemberSample) GetRewards(ctx context.Context, r Requester, contestID string) ([]models.Reward, error) {
	rewards, err := query[models.Reward](ctx, r, DestRewards, models.RewardRequest{RewardFilter: models.EntityFilter{
		EntityIDs:   []string{contestID},
		EntityType:  models.EntityTypeContest,
		Skip:        0,
		Limit:       rewardsLimit,
		CurrencyKey: awardsCurrency,
	}})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Interface("rewards", rewards).Msg("rewards")
	return rewards, nil
}

// SubscribeToLeaderboard subscribes to the top ten ranks of contestID and
// the five ranks around the member.
func (s *MemberSample) SubscribeToLeaderboard(ctx context.Context, r Requester, contestID string) error {
	leaderboards, err := query[models.Leaderboard](ctx, r, DestLeaderboardSubscribe, models.LeaderboardSubscriptionRequest{
		EntityID: contestID,
		Action:   models.LeaderboardSubscribe,
		LeaderboardFilter: models.LeaderboardFilter{
			TopRanksToInclude:   leaderboardTopRanks,
			RanksAboveToInclude: leaderboardRanksAbove,
			RanksBelowToInclude: leaderboardRanksBelow,
		},
	})
	if err != nil {
		return err
	}
	s.logger.Info().Str("contest_id", contestID).Int("leaderboards", len(leaderboards)).Msg("subscribed to leaderboard")
	return nil
}

// GetOptInStates returns the member's achievement opt-in states.
func (s *MemberSample) GetOptInStates(ctx context.Context, r Requester) ([]models.OptInState, error) {
	states, err := query[models.OptInState](ctx, r, DestOptInStates, models.OptInStatesRequest{
		OptinStatesFilter: models.EntityFilter{EntityType: models.EntityTypeAchievement},
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Interface("states", states).Msg("opt-in states")
	return states, nil
}
