package announcement

import (
	"time"

	"github.com/google/uuid"
)

type (
	Announcement struct {
		UUID             uuid.UUID `json:"uuid"`
		Title            string    `json:"title"`
		ShortDescription string    `json:"short_description,omitempty"`
		Link             string    `json:"link,omitempty"`
		Category         string    `json:"category"`
		Image            string    `json:"image,omitempty"`
		Video            string    `json:"video,omitempty"`
		PDF              string    `json:"pdf,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
		UpdatedAt        time.Time `json:"updated_at"`
	}
	Announcements []Announcement

	// Request carries the text fields of a multipart create.
	Request struct {
		Title            string
		ShortDescription string
		Link             string
		Category         string
	}

	// UpdateRequest distinguishes absent fields (nil) from cleared ones.
	UpdateRequest struct {
		Title            *string
		ShortDescription *string
		Link             *string
		Category         *string
	}
)
