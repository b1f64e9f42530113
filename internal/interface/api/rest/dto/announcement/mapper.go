package announcement

import (
	"content-manager-api/internal/domain/announcement"
	"content-manager-api/internal/domain/attachment"
)

func ToResponseAnnouncement(d announcement.Announcement) Announcement {
	return Announcement{
		UUID:             d.UUID,
		Title:            d.Title,
		ShortDescription: d.ShortDescription,
		Link:             d.Link,
		Category:         d.Category,
		Image:            d.Attachments.URL(attachment.SlotImage),
		Video:            d.Attachments.URL(attachment.SlotVideo),
		PDF:              d.Attachments.URL(attachment.SlotPDF),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func ToResponseAnnouncements(ds announcement.Announcements) Announcements {
	as := make(Announcements, len(ds))
	for idx, d := range ds {
		as[idx] = ToResponseAnnouncement(*d)
	}

	return as
}

func ToDomainAnnouncement(r Request) announcement.Announcement {
	return announcement.Announcement{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Link:             r.Link,
		Category:         r.Category,
	}
}

func ToDomainUpdate(r UpdateRequest) announcement.Update {
	return announcement.Update{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Link:             r.Link,
		Category:         r.Category,
	}
}
