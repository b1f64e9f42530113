package user

import (
	"context"
	"errors"
	"time"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

type Repository interface {
	FetchByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u User) (*User, error)
	SetResetToken(ctx context.Context, uuid UUID, tokenHash string, expires time.Time) error
	FetchByResetToken(ctx context.Context, tokenHash string) (*User, error)
	ClearResetToken(ctx context.Context, uuid UUID) error
	UpdatePassword(ctx context.Context, uuid UUID, passwordHash string) error
}
