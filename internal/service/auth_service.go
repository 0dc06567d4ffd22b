package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/galacticx/engagement/internal/repository"
	"github.com/galacticx/engagement/pkg/challenge"
	"github.com/galacticx/engagement/pkg/entity"
	errorvalues "github.com/galacticx/engagement/internal/error_values"
)

var (
	// How long a signed challenge stays acceptable
	challengeMaxAge = 5 * time.Minute
	// Allowance for client clocks slightly ahead of ours
	challengeMaxSkew = time.Minute
	// Nonce retention must outlive challengeMaxAge so a replay inside the
	// freshness window always hits the store
	nonceTTL = 10 * time.Minute
)

type AuthService struct {
	usersRepo  repository.UsersRepositoryI
	nonceStore repository.NonceStoreI
}

func NewAuthService(usersRepo repository.UsersRepositoryI, nonceStore repository.NonceStoreI) *AuthService {
	if usersRepo == nil || nonceStore == nil {
		log.Fatal("on auth service provided nil deps")
	}
	return &AuthService{
		usersRepo:  usersRepo,
		nonceStore: nonceStore,
	}
}

func (as *AuthService) SignIn(ctx context.Context, req *SignInRequest) (*entity.User, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, errors.Join(errorvalues.ErrChallengeMalformed, err)
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	ch, err := challenge.Parse(req.Message)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(ch.Address, req.WalletAddress) {
		return nil, errorvalues.ErrChallengeMalformed
	}
	now := time.Now()
	if now.Sub(ch.IssuedAt) > challengeMaxAge || ch.IssuedAt.Sub(now) > challengeMaxSkew {
		return nil, errorvalues.ErrChallengeExpired
	}
	fresh, err := as.nonceStore.Consume(ctx, ch.Nonce, nonceTTL)
	if err != nil {
		return nil, errors.New("nonce store error: " + err.Error())
	}
	if !fresh {
		return nil, errorvalues.ErrChallengeReplayed
	}
	recovered, err := challenge.RecoverAddress(req.Message, req.Signature)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(recovered, req.WalletAddress) {
		return nil, errorvalues.ErrSignatureInvalid
	}
	// Recovered address is checksummed, store that spelling
	user, err := as.usersRepo.FindOrCreateByWallet(ctx, recovered)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}
