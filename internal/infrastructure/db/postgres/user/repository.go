package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"content-manager-api/internal/domain/user"
	"content-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectUserByEmail, email))
}

func (r *Repository) Create(ctx context.Context, req user.User) (*user.User, error) {
	u, err := r.scanRow(r.db.QueryRow(
		ctx,
		InsertUser,
		req.Name, req.Email, req.PasswordHash, req.Role,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return u, nil
}

func (r *Repository) SetResetToken(ctx context.Context, uuid user.UUID, tokenHash string, expires time.Time) error {
	_, err := r.db.Exec(ctx, SetResetTokenByUUID, tokenHash, expires, uuid.String())
	return err
}

func (r *Repository) FetchByResetToken(ctx context.Context, tokenHash string) (*user.User, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectUserByResetToken, tokenHash))
}

func (r *Repository) ClearResetToken(ctx context.Context, uuid user.UUID) error {
	_, err := r.db.Exec(ctx, ClearResetTokenByUUID, uuid.String())
	return err
}

func (r *Repository) UpdatePassword(ctx context.Context, uuid user.UUID, passwordHash string) error {
	_, err := r.db.Exec(ctx, UpdatePasswordByUUID, passwordHash, uuid.String())
	return err
}

func (r *Repository) scanRow(row pgx.Row) (*user.User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.UUID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.ResetTokenHash,
		&u.ResetExpires,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}
