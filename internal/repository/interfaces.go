package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/galacticx/engagement/pkg/entity"
)

type UsersRepositoryI interface {
	// Looks up user by wallet address, provisioning a fresh row on first sign-in
	FindOrCreateByWallet(ctx context.Context, walletAddress string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Looks up user by wallet address without provisioning
	FindByWallet(ctx context.Context, walletAddress string) (*entity.User, error)
	// Resolves a batch of uids, e.g. for leaderboard rows
	FindByIDs(ctx context.Context, uids []uuid.UUID) ([]*entity.User, error)
	// Sets user's display name
	UpdateUsername(ctx context.Context, uid uuid.UUID, username string) error
}

type WeekStreaksRepositoryI interface {
	// Fetches the record for uid's week anchored at weekStart. Absence of a
	// record is ErrStreakNotFound, distinct from a record with zero claims
	GetByUserAndWeek(ctx context.Context, uid uuid.UUID, weekStart time.Time) (*entity.WeekStreak, error)
	// Marks day claimed and credits points atomically, creating the week row
	// on first claim. Claims only ever gain days. Returns the updated record
	ClaimDay(ctx context.Context, uid uuid.UUID, weekStart time.Time, day string, points int) (*entity.WeekStreak, error)
	// Marks fully-claimed records of weekStart completed and credits the week
	// bonus, returning how many rows were finalized
	FinalizeWeek(ctx context.Context, weekStart time.Time, bonus int) (int, error)
}

type NonceStoreI interface {
	// Records nonce for ttl; reports false when it was already present
	Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error)
}

type LeaderboardRepositoryI interface {
	// Adds points to uid's score on the weekStart board
	AddPoints(ctx context.Context, weekStart time.Time, uid uuid.UUID, points int) error
	// Returns up to limit top scores in rank order
	Top(ctx context.Context, weekStart time.Time, limit int) ([]Score, error)
	// Schedules the weekStart board for deletion after ttl
	Expire(ctx context.Context, weekStart time.Time, ttl time.Duration) error
}

type Score struct {
	UserID uuid.UUID
	Points int
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
