package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/galacticx/engagement/internal/error_values"
	"github.com/galacticx/engagement/pkg/cleanup"
	"github.com/galacticx/engagement/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) FindOrCreateByWallet(ctx context.Context, walletAddress string) (*entity.User, error) {
	var user entity.User
	// DO UPDATE instead of DO NOTHING so the row comes back in both branches
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (wallet_address) VALUES ($1)
		ON CONFLICT (wallet_address) DO UPDATE SET wallet_address = EXCLUDED.wallet_address
		RETURNING id, wallet_address, COALESCE(username, ''), role, created_at;`, walletAddress)
	if err := row.Scan(&user.ID, &user.WalletAddress, &user.Username, &user.Role, &user.CreatedAt); err != nil {
		return nil, errors.New("provisioning user by wallet error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, wallet_address, COALESCE(username, ''), role, created_at FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.WalletAddress, &user.Username, &user.Role, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByWallet(ctx context.Context, walletAddress string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, wallet_address, COALESCE(username, ''), role, created_at FROM users WHERE wallet_address = $1;`, walletAddress)
	if err := row.Scan(&user.ID, &user.WalletAddress, &user.Username, &user.Role, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by wallet error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByIDs(ctx context.Context, uids []uuid.UUID) ([]*entity.User, error) {
	rows, err := ur.conn.Query(ctx, `SELECT id, wallet_address, COALESCE(username, ''), role, created_at FROM users WHERE id = ANY($1);`, uids)
	if err != nil {
		return nil, errors.New("searching users by ids error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.User, 0, len(uids))
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.WalletAddress, &user.Username, &user.Role, &user.CreatedAt); err != nil {
			return nil, errors.New("user row parsing error: " + err.Error())
		}
		result = append(result, &user)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected user rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (ur *UsersRepository) UpdateUsername(ctx context.Context, uid uuid.UUID, username string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET username = $1 WHERE id = $2;`, username, uid)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUsernameTaken
			}
		}
		return errors.New("updating username error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
