package blog

import (
	"time"

	"github.com/google/uuid"

	"content-manager-api/internal/domain/attachment"
)

func SlotPolicy() attachment.Policy {
	return attachment.NewPolicy(attachment.SlotImage, attachment.SlotVideo, attachment.SlotPDF)
}

type (
	UUID = uuid.UUID
	Blog struct {
		UUID        UUID
		Title       string
		Content     string
		Attachments attachment.Attachments

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Blogs []*Blog

	Update struct {
		Title   *string
		Content *string
	}
)

func (b *Blog) Apply(u Update) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Content != nil {
		b.Content = *u.Content
	}
}
