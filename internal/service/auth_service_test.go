package service_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/galacticx/engagement/internal/error_values"
	"github.com/galacticx/engagement/internal/repository/mocks"
	"github.com/galacticx/engagement/internal/service"
	"github.com/galacticx/engagement/pkg/challenge"
	"github.com/galacticx/engagement/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forgeMessage(addr, nonce string, issuedAt time.Time) string {
	return challenge.AppTag +
		"\nAddress: " + addr +
		"\nNonce: " + nonce +
		"\nIssued-At: " + strconv.FormatInt(issuedAt.UnixMilli(), 10)
}

func TestSignIn(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	nonceStore := mocks.NewMockNonceStoreI(ctrl)

	serv := service.NewAuthService(usersRepo, nonceStore)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey).Hex()
	otherKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	userID := uuid.New()
	freshNonce := strings.Repeat("ab", 16)

	message, err := challenge.Build(addr)
	require.NoError(t, err)
	signature, err := challenge.Sign(message, key)
	require.NoError(t, err)

	staleMessage := forgeMessage(addr, freshNonce, time.Now().Add(-10*time.Minute))
	staleSignature, err := challenge.Sign(staleMessage, key)
	require.NoError(t, err)

	futureMessage := forgeMessage(addr, freshNonce, time.Now().Add(5*time.Minute))
	futureSignature, err := challenge.Sign(futureMessage, key)
	require.NoError(t, err)

	foreignMessage, err := challenge.Build(addr)
	require.NoError(t, err)
	foreignSignature, err := challenge.Sign(foreignMessage, otherKey)
	require.NoError(t, err)

	replayedMessage, err := challenge.Build(addr)
	require.NoError(t, err)
	replayedSignature, err := challenge.Sign(replayedMessage, key)
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		Error        error
		Request      *service.SignInRequest
		Result       *entity.User
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			Request: &service.SignInRequest{
				WalletAddress: addr,
				Signature:     signature,
				Message:       message,
			},
			Result: &entity.User{
				ID:            userID,
				WalletAddress: addr,
				Role:          entity.RoleUser,
			},
			MockPrepFunc: func() {
				nonceStore.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				usersRepo.EXPECT().FindOrCreateByWallet(gomock.Any(), addr).Return(&entity.User{
					ID:            userID,
					WalletAddress: addr,
					Role:          entity.RoleUser,
				}, nil)
			},
		},
		{
			Desc:  "success lowercased request address",
			Error: nil,
			Request: &service.SignInRequest{
				WalletAddress: strings.ToLower(addr),
				Signature:     signature,
				Message:       message,
			},
			Result: &entity.User{
				ID:            userID,
				WalletAddress: addr,
				Role:          entity.RoleUser,
			},
			MockPrepFunc: func() {
				nonceStore.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				// Recovered checksummed spelling is what gets stored
				usersRepo.EXPECT().FindOrCreateByWallet(gomock.Any(), addr).Return(&entity.User{
					ID:            userID,
					WalletAddress: addr,
					Role:          entity.RoleUser,
				}, nil)
			},
		},
		{
			Desc:  "error invalid wallet format",
			Error: errorvalues.ErrChallengeMalformed,
			Request: &service.SignInRequest{
				WalletAddress: "not-an-address",
				Signature:     signature,
				Message:       message,
			},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "error message without app tag",
			Error: errorvalues.ErrChallengeMalformed,
			Request: &service.SignInRequest{
				WalletAddress: addr,
				Signature:     signature,
				Message:       "please sign this",
			},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "error challenge address differs from request",
			Error: errorvalues.ErrChallengeMalformed,
			Request: &service.SignInRequest{
				WalletAddress: "0x0000000000000000000000000000000000000001",
				Signature:     signature,
				Message:       message,
			},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "error challenge too old",
			Error: errorvalues.ErrChallengeExpired,
			Request: &service.SignInRequest{
				WalletAddress: addr,
				Signature:     staleSignature,
				Message:       staleMessage,
			},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "error challenge from the future",
			Error: errorvalues.ErrChallengeExpired,
			Request: &service.SignInRequest{
				WalletAddress: addr,
				Signature:     futureSignature,
				Message:       futureMessage,
			},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "error nonce replayed",
			Error: errorvalues.ErrChallengeReplayed,
			Request: &service.SignInRequest{
				WalletAddress: addr,
				Signature:     replayedSignature,
				Message:       replayedMessage,
			},
			MockPrepFunc: func() {
				nonceStore.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
		{
			Desc:  "error signature from another key",
			Error: errorvalues.ErrSignatureInvalid,
			Request: &service.SignInRequest{
				WalletAddress: addr,
				Signature:     foreignSignature,
				Message:       foreignMessage,
			},
			MockPrepFunc: func() {
				nonceStore.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := serv.SignIn(ctx, tc.Request)
			assert.ErrorIs(t, err, tc.Error)
			assert.Equal(t, tc.Result, user)
		})
	}
}

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}
