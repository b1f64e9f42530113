package announcement

import (
	"time"

	"github.com/google/uuid"
)

type (
	Announcement struct {
		ID               uint64
		UUID             uuid.UUID
		Title            string
		ShortDescription string
		Link             string
		Category         string
		Attachments      []byte

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Announcements []*Announcement
)
