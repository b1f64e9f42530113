package teammember

import (
	"time"

	"github.com/google/uuid"
)

type (
	TeamMember struct {
		UUID             uuid.UUID `json:"uuid"`
		Name             string    `json:"name"`
		Role             string    `json:"role"`
		ShortDescription string    `json:"short_description,omitempty"`
		Category         string    `json:"category"`
		Year             string    `json:"year,omitempty"`
		Image            string    `json:"image,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
		UpdatedAt        time.Time `json:"updated_at"`
	}
	TeamMembers []TeamMember

	Request struct {
		Name             string
		Role             string
		ShortDescription string
		Category         string
		Year             string
	}

	UpdateRequest struct {
		Name             *string
		Role             *string
		ShortDescription *string
		Category         *string
		Year             *string
	}
)
