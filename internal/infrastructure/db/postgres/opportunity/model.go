package opportunity

import (
	"time"

	"github.com/google/uuid"
)

type (
	Opportunity struct {
		ID               uint64
		UUID             uuid.UUID
		Title            string
		ShortDescription string
		Link             string
		Attachments      []byte

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Opportunities []*Opportunity
)
