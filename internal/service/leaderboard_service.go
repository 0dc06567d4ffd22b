package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/galacticx/engagement/internal/repository"
	"github.com/galacticx/engagement/pkg/entity"
	"github.com/galacticx/engagement/pkg/streak"
)

type LeaderboardService struct {
	leaderboard repository.LeaderboardRepositoryI
	usersRepo   repository.UsersRepositoryI
}

func NewLeaderboardService(leaderboard repository.LeaderboardRepositoryI, usersRepo repository.UsersRepositoryI) *LeaderboardService {
	if leaderboard == nil || usersRepo == nil {
		log.Fatal("on leaderboard service provided nil repos")
	}
	return &LeaderboardService{
		leaderboard: leaderboard,
		usersRepo:   usersRepo,
	}
}

func (serv *LeaderboardService) Top(ctx context.Context, now time.Time, limit int) ([]entity.LeaderboardEntry, error) {
	scores, err := serv.leaderboard.Top(ctx, streak.WeekStart(now), limit)
	if err != nil {
		return nil, errors.New("leaderboard repository error: " + err.Error())
	}
	if len(scores) == 0 {
		return []entity.LeaderboardEntry{}, nil
	}
	ids := make([]uuid.UUID, 0, len(scores))
	for _, sc := range scores {
		ids = append(ids, sc.UserID)
	}
	users, err := serv.usersRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	byID := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	entries := make([]entity.LeaderboardEntry, 0, len(scores))
	for i, sc := range scores {
		entry := entity.LeaderboardEntry{
			Rank:         i + 1,
			UserID:       sc.UserID,
			WeeklyPoints: sc.Points,
		}
		if u, ok := byID[sc.UserID]; ok {
			entry.Username = u.Username
			entry.WalletAddress = u.WalletAddress
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
