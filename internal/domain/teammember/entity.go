package teammember

import (
	"time"

	"github.com/google/uuid"

	"content-manager-api/internal/domain/attachment"
)

const (
	CategoryCurrent = "current"
	CategoryAlumnae = "alumnae"
)

func ValidCategory(c string) bool {
	return c == CategoryCurrent || c == CategoryAlumnae
}

// Team members carry a single portrait image.
func SlotPolicy() attachment.Policy {
	return attachment.NewPolicy(attachment.SlotImage)
}

type (
	UUID       = uuid.UUID
	TeamMember struct {
		UUID             UUID
		Name             string
		Role             string
		ShortDescription string
		Category         string
		// Year is only meaningful for alumnae, e.g. "2023-2024".
		Year        string
		Attachments attachment.Attachments

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	TeamMembers []*TeamMember

	Update struct {
		Name             *string
		Role             *string
		ShortDescription *string
		Category         *string
		Year             *string
	}

	Filter struct {
		Category string
	}
)

func (m *TeamMember) Apply(u Update) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Role != nil {
		m.Role = *u.Role
	}
	if u.ShortDescription != nil {
		m.ShortDescription = *u.ShortDescription
	}
	if u.Category != nil {
		m.Category = *u.Category
	}
	if u.Year != nil {
		m.Year = *u.Year
	}
}
