package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Username      string    `json:"username,omitempty"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
}

type WeekStreak struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	WeekStart   time.Time       `json:"week_start"`
	Claims      map[string]bool `json:"claims"`
	TotalPoints int             `json:"total_points"`
	BonusTokens int             `json:"bonus_tokens"`
	Completed   bool            `json:"completed"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ClaimResult struct {
	PointsEarned int `json:"pointsEarned"`
	NewStreak    int `json:"newStreak"`
	TotalPoints  int `json:"totalPoints"`
}

type LeaderboardEntry struct {
	Rank          int       `json:"rank"`
	UserID        uuid.UUID `json:"user_id"`
	Username      string    `json:"username,omitempty"`
	WalletAddress string    `json:"wallet_address"`
	WeeklyPoints  int       `json:"weekly_points"`
}
