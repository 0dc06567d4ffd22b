package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/galacticx/engagement/internal/error_values"
	"github.com/galacticx/engagement/internal/repository"
	"github.com/galacticx/engagement/pkg/entity"
	"github.com/galacticx/engagement/pkg/streak"
)

type StreakService struct {
	streaksRepo repository.WeekStreaksRepositoryI
	leaderboard repository.LeaderboardRepositoryI
}

func NewStreakService(streaksRepo repository.WeekStreaksRepositoryI, leaderboard repository.LeaderboardRepositoryI) *StreakService {
	if streaksRepo == nil || leaderboard == nil {
		log.Fatal("on streak service provided nil repos")
	}
	return &StreakService{
		streaksRepo: streaksRepo,
		leaderboard: leaderboard,
	}
}

func (serv *StreakService) GetWeek(ctx context.Context, uid uuid.UUID, now time.Time) (*entity.WeekStreak, []streak.DayState, error) {
	record, err := serv.streaksRepo.GetByUserAndWeek(ctx, uid, streak.WeekStart(now))
	if err != nil {
		if !errors.Is(err, errorvalues.ErrStreakNotFound) {
			return nil, nil, errors.New("streaks repository error: " + err.Error())
		}
		// No record yet: every day derives from an empty claims map
		return nil, streak.DayStates(nil, now), nil
	}
	return record, streak.DayStates(record.Claims, now), nil
}

func (serv *StreakService) ClaimDay(ctx context.Context, uid uuid.UUID, day string, now time.Time) (*entity.ClaimResult, error) {
	if streak.DayIndex(day) < 0 {
		return nil, errorvalues.ErrDayNotClaimable
	}
	weekStart := streak.WeekStart(now)
	claims := map[string]bool{}
	record, err := serv.streaksRepo.GetByUserAndWeek(ctx, uid, weekStart)
	if err != nil && !errors.Is(err, errorvalues.ErrStreakNotFound) {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	if record != nil {
		claims = record.Claims
	}
	if claims[day] {
		return nil, errorvalues.ErrDayAlreadyClaimed
	}
	if !streak.CanClaim(claims, now, day) {
		return nil, errorvalues.ErrDayNotClaimable
	}
	points := streak.ClaimReward(streak.ConsecutiveDays(claims))
	updated, err := serv.streaksRepo.ClaimDay(ctx, uid, weekStart, day, points)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDayAlreadyClaimed):
			return nil, err
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	// Leaderboard is derived data, a failed bump must not undo the claim
	if err := serv.leaderboard.AddPoints(ctx, weekStart, uid, points); err != nil {
		slog.Error("updating leaderboard after claim failed", slog.String("error", err.Error()))
	}
	return &entity.ClaimResult{
		PointsEarned: points,
		NewStreak:    streak.ConsecutiveDays(updated.Claims),
		TotalPoints:  updated.TotalPoints,
	}, nil
}
