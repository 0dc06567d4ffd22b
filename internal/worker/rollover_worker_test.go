package worker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/galacticx/engagement/internal/repository/mocks"
	"github.com/galacticx/engagement/internal/worker"
	"github.com/galacticx/engagement/pkg/streak"
)

func TestRunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	streaksRepo := mocks.NewMockWeekStreaksRepositoryI(ctrl)
	leaderboard := mocks.NewMockLeaderboardRepositoryI(ctrl)
	w := worker.NewRolloverWorker(streaksRepo, leaderboard)

	prevWeek := streak.WeekStart(time.Now()).AddDate(0, 0, -streak.DaysInWeek)

	t.Run("finalizes previous week and expires its board", func(t *testing.T) {
		streaksRepo.EXPECT().FinalizeWeek(gomock.Any(), prevWeek, streak.WeekBonusCoins).Return(2, nil)
		leaderboard.EXPECT().Expire(gomock.Any(), prevWeek, gomock.Any()).Return(nil)
		w.RunOnce()
	})

	t.Run("skips expiry when finalize fails", func(t *testing.T) {
		streaksRepo.EXPECT().FinalizeWeek(gomock.Any(), prevWeek, streak.WeekBonusCoins).
			Return(0, errors.New("db down"))
		w.RunOnce()
	})

	t.Run("expiry failure is tolerated", func(t *testing.T) {
		streaksRepo.EXPECT().FinalizeWeek(gomock.Any(), prevWeek, streak.WeekBonusCoins).Return(0, nil)
		leaderboard.EXPECT().Expire(gomock.Any(), prevWeek, gomock.Any()).Return(errors.New("redis down"))
		w.RunOnce()
	})
}
