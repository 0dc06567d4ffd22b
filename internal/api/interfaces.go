package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/galacticx/engagement/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
	TTLSeconds() int64
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID        string `json:"user_id"`
	WalletAddress string `json:"wallet_address"`
	Role          string `json:"role"`
}
