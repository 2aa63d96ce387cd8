package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
	pgUniqueCode = "23505"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS users (
				id        SERIAL PRIMARY KEY,
				username  TEXT NOT NULL UNIQUE,
				pass_hash BYTEA NOT NULL
			)
		`)
		return err
	})
}

func (s *PostgresStore) Create(ctx context.Context, username, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u := User{Username: username, Hash: hash}
	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			INSERT INTO users (username, pass_hash)
			VALUES ($1, $2)
			RETURNING id
		`, username, hash).Scan(&u.ID)
	})

	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrUsernameExists
		}
		return User{}, err
	}
	return u, nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id int) (User, bool, error) {
	return s.getOne(ctx, `
		SELECT id, username, pass_hash FROM users WHERE id = $1
	`, id)
}

func (s *PostgresStore) GetByUsername(ctx context.Context, username string) (User, bool, error) {
	return s.getOne(ctx, `
		SELECT id, username, pass_hash FROM users WHERE username = $1
	`, username)
}

func (s *PostgresStore) getOne(ctx context.Context, sqlText string, arg any) (User, bool, error) {
	var u User

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, sqlText, arg).Scan(&u.ID, &u.Username, &u.Hash)
	})

	if err == sql.ErrNoRows {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	return u, true, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueCode
}
