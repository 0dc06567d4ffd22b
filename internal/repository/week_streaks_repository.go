package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/galacticx/engagement/internal/error_values"
	"github.com/galacticx/engagement/pkg/cleanup"
	"github.com/galacticx/engagement/pkg/entity"
)

type WeekStreaksRepository struct {
	conn PgConnection
}

func NewWeekStreaksRepo(cfg DBConfig) *WeekStreaksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for weekStreaksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for weekStreaksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WeekStreaksRepository{
		conn: pool,
	}
}

func NewWeekStreaksRepoWithConn(conn PgConnection) *WeekStreaksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for weekStreaksRepo: " + err.Error())
	}
	return &WeekStreaksRepository{
		conn: conn,
	}
}

func (wr *WeekStreaksRepository) GetByUserAndWeek(ctx context.Context, uid uuid.UUID, weekStart time.Time) (*entity.WeekStreak, error) {
	var ws entity.WeekStreak
	row := wr.conn.QueryRow(
		ctx,
		`SELECT id, user_id, week_start, claims, total_points, bonus_tokens, completed, created_at, updated_at
		 FROM week_streaks WHERE user_id = $1 AND week_start = $2;`,
		uid,
		weekStart,
	)
	err := row.Scan(&ws.ID, &ws.UserID, &ws.WeekStart, &ws.Claims, &ws.TotalPoints, &ws.BonusTokens, &ws.Completed, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStreakNotFound
		}
		return nil, errors.New("searching week streak error: " + err.Error())
	}
	return &ws, nil
}

// ClaimDay upserts the week row with day set to true. The WHERE guard makes
// claims monotonic: an already-claimed day yields no row and ErrDayAlreadyClaimed,
// so concurrent claims from two sessions can't double-credit.
func (wr *WeekStreaksRepository) ClaimDay(ctx context.Context, uid uuid.UUID, weekStart time.Time, day string, points int) (*entity.WeekStreak, error) {
	var ws entity.WeekStreak
	row := wr.conn.QueryRow(
		ctx,
		`INSERT INTO week_streaks (user_id, week_start, claims, total_points)
		 VALUES ($1, $2, jsonb_build_object($3::text, true), $4)
		 ON CONFLICT (user_id, week_start) DO UPDATE SET
			claims = week_streaks.claims || jsonb_build_object($3::text, true),
			total_points = week_streaks.total_points + $4,
			completed = (SELECT count(*) FROM jsonb_object_keys(week_streaks.claims || jsonb_build_object($3::text, true))) >= 7,
			updated_at = now()
		 WHERE NOT COALESCE((week_streaks.claims ->> $3::text)::boolean, false)
		 RETURNING id, user_id, week_start, claims, total_points, bonus_tokens, completed, created_at, updated_at;`,
		uid,
		weekStart,
		day,
		points,
	)
	err := row.Scan(&ws.ID, &ws.UserID, &ws.WeekStart, &ws.Claims, &ws.TotalPoints, &ws.BonusTokens, &ws.Completed, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDayAlreadyClaimed
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrUserNotFound
			}
		}
		return nil, errors.New("claiming day error: " + err.Error())
	}
	return &ws, nil
}

func (wr *WeekStreaksRepository) FinalizeWeek(ctx context.Context, weekStart time.Time, bonus int) (int, error) {
	ct, err := wr.conn.Exec(
		ctx,
		`UPDATE week_streaks SET completed = true, bonus_tokens = $2, updated_at = now()
		 WHERE week_start = $1 AND bonus_tokens = 0
		 AND (SELECT count(*) FROM jsonb_object_keys(claims)) >= 7;`,
		weekStart,
		bonus,
	)
	if err != nil {
		return 0, errors.New("finalizing week error: " + err.Error())
	}
	return int(ct.RowsAffected()), nil
}
