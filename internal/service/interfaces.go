package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/galacticx/engagement/pkg/entity"
	"github.com/galacticx/engagement/pkg/streak"
)

type SignInRequest struct {
	WalletAddress string `validate:"required,eth_addr"`
	Signature     string `validate:"required,min=132,max=132"`
	Message       string `validate:"required,max=512"`
}

type SetUsernameRequest struct {
	Username string `validate:"required,alphanum_underscore,min=3,max=30"`
}

type AuthServiceI interface {
	// Verifies the signed challenge end to end (layout, freshness, single-use
	// nonce, signature recovery) and provisions or loads the wallet's user.
	// The backend is the sole authority on signature validity
	SignIn(ctx context.Context, req *SignInRequest) (*entity.User, error)
}

type UserServiceI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Validates and sets user's display name
	SetUsername(ctx context.Context, id uuid.UUID, req *SetUsernameRequest) error
}

type StreakServiceI interface {
	// Loads the week record for now's week. Record is nil when the user hasn't
	// claimed yet this week; day states are derived either way
	GetWeek(ctx context.Context, uid uuid.UUID, now time.Time) (*entity.WeekStreak, []streak.DayState, error)
	// Re-derives claimability and credits the day. Rejects wrong or
	// already-claimed days, trusting nothing the caller derived
	ClaimDay(ctx context.Context, uid uuid.UUID, day string, now time.Time) (*entity.ClaimResult, error)
}

type LeaderboardServiceI interface {
	// Top weekly scores with usernames resolved, in rank order
	Top(ctx context.Context, now time.Time, limit int) ([]entity.LeaderboardEntry, error)
}
