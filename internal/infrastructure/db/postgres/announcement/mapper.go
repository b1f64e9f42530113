package announcement

import (
	domain "content-manager-api/internal/domain/announcement"
	"content-manager-api/internal/infrastructure/db/postgres"
)

func fromDBModel(model *Announcement) (*domain.Announcement, error) {
	atts, err := postgres.UnmarshalAttachments(model.Attachments)
	if err != nil {
		return nil, err
	}

	return &domain.Announcement{
		UUID:             model.UUID,
		Title:            model.Title,
		ShortDescription: model.ShortDescription,
		Link:             model.Link,
		Category:         model.Category,
		Attachments:      atts,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

func fromDBModels(models Announcements) (domain.Announcements, error) {
	as := make(domain.Announcements, len(models))
	for idx, m := range models {
		a, err := fromDBModel(m)
		if err != nil {
			return nil, err
		}
		as[idx] = a
	}

	return as, nil
}
