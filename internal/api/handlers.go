package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/galacticx/engagement/internal/error_values"
	"github.com/galacticx/engagement/internal/service"
	"github.com/galacticx/engagement/pkg/entity"
	"github.com/galacticx/engagement/pkg/httputil"
	"github.com/galacticx/engagement/pkg/streak"
)

type SignInRequest struct {
	WalletAddress string `json:"walletAddress"`
	Signature     string `json:"signature"`
	Message       string `json:"message"`
}

type SignInResponse struct {
	Success       bool   `json:"success"`
	UserID        string `json:"user_id"`
	WalletAddress string `json:"wallet_address"`
	Role          string `json:"role"`
	AccessToken   string `json:"access_token"`
	ExpiresIn     int64  `json:"expires_in"`
}

type SetUsernameRequest struct {
	Username string `json:"username"`
}

type ClaimDayRequest struct {
	Day string `json:"day"`
}

type weekStreakPayload struct {
	*entity.WeekStreak
	WeekEnd time.Time `json:"week_end"`
}

type WeekStreakData struct {
	WeekStreak *weekStreakPayload `json:"weekStreak,omitempty"`
	Days       []streak.DayState  `json:"days"`
}

func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SignInRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("sign-in error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.authService.SignIn(ctx, &service.SignInRequest{
		WalletAddress: req.WalletAddress,
		Signature:     req.Signature,
		Message:       req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeMalformed):
			logger.Error("sign-in error: malformed challenge")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "malformed challenge message")
		case errors.Is(err, errorvalues.ErrChallengeExpired):
			logger.Error("sign-in error: stale challenge")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "challenge expired, request a new one")
		case errors.Is(err, errorvalues.ErrChallengeReplayed):
			logger.Error("sign-in error: replayed nonce")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "challenge already used")
		case errors.Is(err, errorvalues.ErrSignatureInvalid):
			logger.Error("sign-in error: signature doesn't match wallet")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "signature verification failed")
		default:
			logger.Error("sign-in error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during sign-in")
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("sign-in error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SignInResponse{
		Success:       true,
		UserID:        user.ID.String(),
		WalletAddress: user.WalletAddress,
		Role:          user.Role,
		AccessToken:   token,
		ExpiresIn:     s.jwtService.TTLSeconds(),
	})
	logger.Info("successful sign-in", slog.String("wallet", user.WalletAddress))
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get profile error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist")
			return
		}
		logger.Error("get profile error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting profile")
		return
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{"user": user}, "")
}

func (s *Server) SetUsername(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set username error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	var req SetUsernameRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set username error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.SetUsername(ctx, uid, &service.SetUsernameRequest{
		Username: req.Username,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUsernameInvalid):
			logger.Error("set username error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "username doesn't fit the rules")
		case errors.Is(err, errorvalues.ErrUsernameTaken):
			logger.Error("set username error: already taken")
			httputil.WriteErrorResponse(w, http.StatusConflict, "username already taken")
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("set username error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist")
		default:
			logger.Error("set username error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while setting username")
		}
		return
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, nil, "username updated")
	logger.Info("username updated")
}

func (s *Server) GetWeekStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get week streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	now := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	record, days, err := s.streakService.GetWeek(ctx, uid, now)
	if err != nil {
		logger.Error("get week streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting week streak")
		return
	}
	data := WeekStreakData{Days: days}
	if record != nil {
		data.WeekStreak = &weekStreakPayload{
			WeekStreak: record,
			WeekEnd:    streak.WeekEnd(now),
		}
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, data, "")
	logger.Info("week streak provided")
}

func (s *Server) ClaimDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("claim error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	var req ClaimDayRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("claim error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.streakService.ClaimDay(ctx, uid, req.Day, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDayAlreadyClaimed):
			logger.Error("claim error: day already claimed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "day already claimed")
		case errors.Is(err, errorvalues.ErrDayNotClaimable):
			logger.Error("claim error: day not claimable")
			httputil.WriteErrorResponse(w, http.StatusConflict, "day is not claimable today")
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("claim error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist")
		default:
			logger.Error("claim error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while claiming day")
		}
		return
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, result, "day claimed")
	logger.Info("day claimed", slog.Int("points", result.PointsEarned))
}

func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entries, err := s.leaderboardService.Top(ctx, time.Now(), limit)
	if err != nil {
		logger.Error("leaderboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting leaderboard")
		return
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
		"leaderboard": entries,
		"total_users": len(entries),
	}, "")
	logger.Info("leaderboard provided")
}
