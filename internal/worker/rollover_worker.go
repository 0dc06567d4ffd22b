// Package worker runs the weekly rollover: once a new week starts, fully
// claimed records of the previous week get their bonus credited and the old
// leaderboard set is scheduled away.
package worker

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/galacticx/engagement/internal/repository"
	"github.com/galacticx/engagement/pkg/cleanup"
	"github.com/galacticx/engagement/pkg/streak"
)

var (
	// Old leaderboards stay readable for a week before redis drops them
	leaderboardRetention = 7 * 24 * time.Hour
)

type RolloverWorker struct {
	streaksRepo repository.WeekStreaksRepositoryI
	leaderboard repository.LeaderboardRepositoryI
}

func NewRolloverWorker(streaksRepo repository.WeekStreaksRepositoryI, leaderboard repository.LeaderboardRepositoryI) *RolloverWorker {
	if streaksRepo == nil || leaderboard == nil {
		log.Fatal("on rollover worker provided nil repos")
	}
	return &RolloverWorker{
		streaksRepo: streaksRepo,
		leaderboard: leaderboard,
	}
}

// Start schedules the rollover for Monday 00:00:30 UTC and registers scheduler
// shutdown as a cleanup job.
func (w *RolloverWorker) Start() error {
	sched, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return err
	}
	_, err = sched.NewJob(
		gocron.WeeklyJob(1,
			gocron.NewWeekdays(time.Monday),
			gocron.NewAtTimes(gocron.NewAtTime(0, 0, 30)),
		),
		gocron.NewTask(w.RunOnce),
	)
	if err != nil {
		return err
	}
	sched.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping rollover scheduler",
		F:    sched.Shutdown,
	})
	return nil
}

// RunOnce finalizes the week before the current one. Safe to re-run: only
// rows without a credited bonus are touched.
func (w *RolloverWorker) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	prevWeek := streak.WeekStart(time.Now()).AddDate(0, 0, -streak.DaysInWeek)
	finalized, err := w.streaksRepo.FinalizeWeek(ctx, prevWeek, streak.WeekBonusCoins)
	if err != nil {
		slog.Error("finalizing previous week failed", slog.String("error", err.Error()))
		return
	}
	if err := w.leaderboard.Expire(ctx, prevWeek, leaderboardRetention); err != nil {
		slog.Error("expiring previous leaderboard failed", slog.String("error", err.Error()))
	}
	slog.Info("weekly rollover done",
		slog.String("week_start", prevWeek.Format("2006-01-02")),
		slog.Int("finalized", finalized),
	)
}
