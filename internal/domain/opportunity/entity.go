package opportunity

import (
	"time"

	"github.com/google/uuid"

	"content-manager-api/internal/domain/attachment"
)

func SlotPolicy() attachment.Policy {
	return attachment.NewPolicy(attachment.SlotImage)
}

type (
	UUID        = uuid.UUID
	Opportunity struct {
		UUID             UUID
		Title            string
		ShortDescription string
		Link             string
		Attachments      attachment.Attachments

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Opportunities []*Opportunity

	Update struct {
		Title            *string
		ShortDescription *string
		Link             *string
	}
)

func (o *Opportunity) Apply(u Update) {
	if u.Title != nil {
		o.Title = *u.Title
	}
	if u.ShortDescription != nil {
		o.ShortDescription = *u.ShortDescription
	}
	if u.Link != nil {
		o.Link = *u.Link
	}
}
