package blog

import (
	"time"

	"github.com/google/uuid"
)

type (
	Blog struct {
		UUID      uuid.UUID `json:"uuid"`
		Title     string    `json:"title"`
		Content   string    `json:"content"`
		Image     string    `json:"image,omitempty"`
		Video     string    `json:"video,omitempty"`
		PDF       string    `json:"pdf,omitempty"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	Blogs []Blog

	Request struct {
		Title   string
		Content string
	}

	UpdateRequest struct {
		Title   *string
		Content *string
	}
)
