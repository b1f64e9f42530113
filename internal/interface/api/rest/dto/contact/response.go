package contact

import (
	"time"

	"github.com/google/uuid"
)

type (
	Message struct {
		UUID      uuid.UUID `json:"uuid"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Phone     string    `json:"phone,omitempty"`
		Message   string    `json:"message"`
		CreatedAt time.Time `json:"created_at"`
	}
	Messages []Message

	Request struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
)
