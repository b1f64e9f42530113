package teammember

import (
	"time"

	"github.com/google/uuid"
)

type (
	TeamMember struct {
		ID               uint64
		UUID             uuid.UUID
		Name             string
		Role             string
		ShortDescription string
		Category         string
		Year             string
		Attachments      []byte

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	TeamMembers []*TeamMember
)
