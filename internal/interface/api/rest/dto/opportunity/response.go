package opportunity

import (
	"time"

	"github.com/google/uuid"
)

type (
	Opportunity struct {
		UUID             uuid.UUID `json:"uuid"`
		Title            string    `json:"title"`
		ShortDescription string    `json:"short_description,omitempty"`
		Link             string    `json:"link"`
		Image            string    `json:"image,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
		UpdatedAt        time.Time `json:"updated_at"`
	}
	Opportunities []Opportunity

	Request struct {
		Title            string
		ShortDescription string
		Link             string
	}

	UpdateRequest struct {
		Title            *string
		ShortDescription *string
		Link             *string
	}
)
