package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type (
	UUID = uuid.UUID
	User struct {
		UUID         UUID
		Name         string
		Email        string
		PasswordHash string
		Role         string

		// Password-reset state: a sha256 of the token mailed to the user,
		// valid until ResetExpires.
		ResetTokenHash *string
		ResetExpires   *time.Time

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
