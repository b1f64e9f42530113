package event

import (
	"time"

	"github.com/google/uuid"
)

type (
	Event struct {
		UUID             uuid.UUID  `json:"uuid"`
		Title            string     `json:"title"`
		ShortDescription string     `json:"short_description,omitempty"`
		Link             string     `json:"link,omitempty"`
		EventDate        *time.Time `json:"event_date,omitempty"`
		Image            string     `json:"image,omitempty"`
		Video            string     `json:"video,omitempty"`
		CreatedAt        time.Time  `json:"created_at"`
		UpdatedAt        time.Time  `json:"updated_at"`
	}
	Events []Event

	Request struct {
		Title            string
		ShortDescription string
		Link             string
		EventDate        *time.Time
	}

	UpdateRequest struct {
		Title            *string
		ShortDescription *string
		Link             *string
		EventDate        *time.Time
	}
)
