package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/galacticx/engagement/internal/error_values"
	"github.com/galacticx/engagement/internal/repository"
	"github.com/galacticx/engagement/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "wallet_address", "username", "role", "created_at"}

func TestFindOrCreateByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	usersRepo := repository.NewUsersRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO users (wallet_address) VALUES ($1)`)
	wallet := "0x8ba1f109551bD432803012645Ac136ddd64DBA72"
	userID := uuid.New()
	createdAt := time.Now()
	testCases := []struct {
		Desc         string
		Error        error
		UserResult   *entity.User
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			UserResult: &entity.User{
				ID:            userID,
				WalletAddress: wallet,
				Username:      "",
				Role:          entity.RoleUser,
				CreatedAt:     createdAt,
			},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(wallet).
					WillReturnRows(pgxmock.NewRows(userColumns).
						AddRow(userID, wallet, "", entity.RoleUser, createdAt))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("provisioning user by wallet error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(wallet).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := usersRepo.FindOrCreateByWallet(ctx, wallet)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.UserResult, user)
			}
		})
	}
}

func TestFindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	usersRepo := repository.NewUsersRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, wallet_address, COALESCE(username, ''), role, created_at FROM users WHERE id = $1;`)
	userID := uuid.New()
	createdAt := time.Now()
	testCases := []struct {
		Desc         string
		Error        error
		UserResult   *entity.User
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			UserResult: &entity.User{
				ID:            userID,
				WalletAddress: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
				Username:      "fantasy_fan",
				Role:          entity.RoleUser,
				CreatedAt:     createdAt,
			},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(userColumns).
						AddRow(userID, "0x8ba1f109551bD432803012645Ac136ddd64DBA72", "fantasy_fan", entity.RoleUser, createdAt))
			},
		},
		{
			Desc:  "user not found",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("searching user by id error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := usersRepo.FindByID(ctx, userID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.UserResult, user)
			}
		})
	}
}

func TestFindByIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	usersRepo := repository.NewUsersRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, wallet_address, COALESCE(username, ''), role, created_at FROM users WHERE id = ANY($1);`)
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	createdAt := time.Now()

	t.Run("successful", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow(ids[0], "0xaaa1", "first_fan", entity.RoleUser, createdAt).
			AddRow(ids[1], "0xbbb2", "second_fan", entity.RoleUser, createdAt)
		mock.ExpectQuery(query).WithArgs(ids).WillReturnRows(rows)

		users, err := usersRepo.FindByIDs(context.Background(), ids)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, ids[0], users[0].ID)
		assert.Equal(t, "second_fan", users[1].Username)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(ids).WillReturnError(errors.New("db error"))
		users, err := usersRepo.FindByIDs(context.Background(), ids)
		assert.Nil(t, users)
		assert.EqualError(t, err, "searching users by ids error: db error")
	})
}

func TestUpdateUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	usersRepo := repository.NewUsersRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE users SET username = $1 WHERE id = $2;`)
	userID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).
					WithArgs("fantasy_fan", userID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc:  "unique violation",
			Error: errorvalues.ErrUsernameTaken,
			MockPrepFunc: func() {
				mock.ExpectExec(query).
					WithArgs("fantasy_fan", userID).
					WillReturnError(&pgconn.PgError{
						Code: "23505",
					})
			},
		},
		{
			Desc:  "user not found",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).
					WithArgs("fantasy_fan", userID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("updating username error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).
					WithArgs("fantasy_fan", userID).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := usersRepo.UpdateUsername(ctx, userID, "fantasy_fan")
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
