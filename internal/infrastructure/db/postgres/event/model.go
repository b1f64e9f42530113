package event

import (
	"time"

	"github.com/google/uuid"
)

type (
	Event struct {
		ID               uint64
		UUID             uuid.UUID
		Title            string
		ShortDescription string
		Link             string
		EventDate        *time.Time
		Attachments      []byte

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Events []*Event
)
