package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// LeaderboardRepository ranks weekly claim points in a per-week sorted set.
type LeaderboardRepository struct {
	client redis.Cmdable
}

func NewLeaderboardRepo(client redis.Cmdable) *LeaderboardRepository {
	return &LeaderboardRepository{
		client: client,
	}
}

func weekKey(weekStart time.Time) string {
	return "leaderboard:" + weekStart.UTC().Format("2006-01-02")
}

func (lr *LeaderboardRepository) AddPoints(ctx context.Context, weekStart time.Time, uid uuid.UUID, points int) error {
	err := lr.client.ZIncrBy(ctx, weekKey(weekStart), float64(points), uid.String()).Err()
	if err != nil {
		return errors.New("adding leaderboard points error: " + err.Error())
	}
	return nil
}

func (lr *LeaderboardRepository) Top(ctx context.Context, weekStart time.Time, limit int) ([]Score, error) {
	entries, err := lr.client.ZRevRangeWithScores(ctx, weekKey(weekStart), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.New("reading leaderboard error: " + err.Error())
	}
	result := make([]Score, 0, len(entries))
	for _, e := range entries {
		member, ok := e.Member.(string)
		if !ok {
			continue
		}
		uid, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		result = append(result, Score{
			UserID: uid,
			Points: int(e.Score),
		})
	}
	return result, nil
}

func (lr *LeaderboardRepository) Expire(ctx context.Context, weekStart time.Time, ttl time.Duration) error {
	err := lr.client.Expire(ctx, weekKey(weekStart), ttl).Err()
	if err != nil {
		return errors.New("expiring leaderboard error: " + err.Error())
	}
	return nil
}
