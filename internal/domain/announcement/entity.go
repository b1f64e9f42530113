package announcement

import (
	"time"

	"github.com/google/uuid"

	"content-manager-api/internal/domain/attachment"
)

const (
	CategoryAnnouncement  = "announcement"
	CategoryOpportunities = "opportunities"
)

func ValidCategory(c string) bool {
	return c == CategoryAnnouncement || c == CategoryOpportunities
}

// Slots an announcement accepts: cover image, video and pdf, all optional.
func SlotPolicy() attachment.Policy {
	return attachment.NewPolicy(attachment.SlotImage, attachment.SlotVideo, attachment.SlotPDF)
}

type (
	UUID         = uuid.UUID
	Announcement struct {
		UUID             UUID
		Title            string
		ShortDescription string
		Link             string
		Category         string
		Attachments      attachment.Attachments

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Announcements []*Announcement

	// Update carries the fields of a partial update. Nil means "leave as-is",
	// mirroring how omitted slots leave attachments untouched.
	Update struct {
		Title            *string
		ShortDescription *string
		Link             *string
		Category         *string
	}

	Filter struct {
		Category string
	}
)

func (a *Announcement) Apply(u Update) {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.ShortDescription != nil {
		a.ShortDescription = *u.ShortDescription
	}
	if u.Link != nil {
		a.Link = *u.Link
	}
	if u.Category != nil {
		a.Category = *u.Category
	}
}
