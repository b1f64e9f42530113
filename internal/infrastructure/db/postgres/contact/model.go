package contact

import (
	"time"

	"github.com/google/uuid"
)

type (
	Message struct {
		ID      uint64
		UUID    uuid.UUID
		Name    string
		Email   string
		Phone   string
		Message string

		CreatedAt time.Time
	}
	Messages []*Message
)
