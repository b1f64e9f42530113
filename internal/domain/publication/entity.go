package publication

import (
	"time"

	"github.com/google/uuid"

	"content-manager-api/internal/domain/attachment"
)

const (
	CategoryResearch  = "Research"
	CategoryReports   = "Reports"
	CategoryResources = "Resources"
)

func ValidCategory(c string) bool {
	return c == CategoryResearch || c == CategoryReports || c == CategoryResources
}

func SlotPolicy() attachment.Policy {
	return attachment.NewPolicy(attachment.SlotImage, attachment.SlotPDF)
}

type (
	UUID        = uuid.UUID
	Publication struct {
		UUID             UUID
		Title            string
		ShortDescription string
		Category         string
		IsOngoing        bool
		Disclaimer       string
		Attachments      attachment.Attachments

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Publications []*Publication

	Update struct {
		Title            *string
		ShortDescription *string
		Category         *string
		IsOngoing        *bool
		Disclaimer       *string
	}

	Filter struct {
		Category string
	}
)

func (p *Publication) Apply(u Update) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.ShortDescription != nil {
		p.ShortDescription = *u.ShortDescription
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.IsOngoing != nil {
		p.IsOngoing = *u.IsOngoing
	}
	if u.Disclaimer != nil {
		p.Disclaimer = *u.Disclaimer
	}
}
