package blog

import (
	"time"

	"github.com/google/uuid"
)

type (
	Blog struct {
		ID          uint64
		UUID        uuid.UUID
		Title       string
		Content     string
		Attachments []byte

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Blogs []*Blog
)
