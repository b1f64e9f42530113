package contact

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID    = uuid.UUID
	Message struct {
		UUID    UUID
		Name    string
		Email   string
		Phone   string
		Message string

		CreatedAt time.Time
	}
	Messages []*Message
)
