// Package user holds the account records defined by the data model. No HTTP
// route reaches them yet; the store exists for a future sign-in feature.
package user

import (
	"context"
	"errors"
)

var ErrUsernameExists = errors.New("username already exists")

type User struct {
	ID       int
	Username string
	Hash     []byte
}

type Store interface {
	Ping(ctx context.Context) error
	Create(ctx context.Context, username, password string) (User, error)
	GetByID(ctx context.Context, id int) (User, bool, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
}
