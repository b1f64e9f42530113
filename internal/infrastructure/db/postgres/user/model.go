package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uint64
	UUID         uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string

	ResetTokenHash *string
	ResetExpires   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
