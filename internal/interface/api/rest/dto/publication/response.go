package publication

import (
	"time"

	"github.com/google/uuid"
)

type (
	Publication struct {
		UUID             uuid.UUID `json:"uuid"`
		Title            string    `json:"title"`
		ShortDescription string    `json:"short_description,omitempty"`
		Category         string    `json:"category"`
		IsOngoing        bool      `json:"is_ongoing"`
		Disclaimer       string    `json:"disclaimer,omitempty"`
		Image            string    `json:"image,omitempty"`
		PDF              string    `json:"pdf,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
		UpdatedAt        time.Time `json:"updated_at"`
	}
	Publications []Publication

	Request struct {
		Title            string
		ShortDescription string
		Category         string
		IsOngoing        bool
		Disclaimer       string
	}

	UpdateRequest struct {
		Title            *string
		ShortDescription *string
		Category         *string
		IsOngoing        *bool
		Disclaimer       *string
	}
)
