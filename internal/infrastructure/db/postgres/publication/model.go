package publication

import (
	"time"

	"github.com/google/uuid"
)

type (
	Publication struct {
		ID               uint64
		UUID             uuid.UUID
		Title            string
		ShortDescription string
		Category         string
		IsOngoing        bool
		Disclaimer       string
		Attachments      []byte

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Publications []*Publication
)
