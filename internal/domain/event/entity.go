package event

import (
	"time"

	"github.com/google/uuid"

	"content-manager-api/internal/domain/attachment"
)

func SlotPolicy() attachment.Policy {
	return attachment.NewPolicy(attachment.SlotImage, attachment.SlotVideo)
}

type (
	UUID  = uuid.UUID
	Event struct {
		UUID             UUID
		Title            string
		ShortDescription string
		Link             string
		EventDate        *time.Time
		Attachments      attachment.Attachments

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Events []*Event

	Update struct {
		Title            *string
		ShortDescription *string
		Link             *string
		EventDate        *time.Time
	}

	// Filter narrows listings to events within [Start, End]. Listings are
	// always ordered by event date ascending.
	Filter struct {
		Start *time.Time
		End   *time.Time
	}
)

func (e *Event) Apply(u Update) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.ShortDescription != nil {
		e.ShortDescription = *u.ShortDescription
	}
	if u.Link != nil {
		e.Link = *u.Link
	}
	if u.EventDate != nil {
		e.EventDate = u.EventDate
	}
}
