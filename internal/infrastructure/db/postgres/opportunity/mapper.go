package opportunity

import (
	domain "content-manager-api/internal/domain/opportunity"
	"content-manager-api/internal/infrastructure/db/postgres"
)

func fromDBModel(model *Opportunity) (*domain.Opportunity, error) {
	atts, err := postgres.UnmarshalAttachments(model.Attachments)
	if err != nil {
		return nil, err
	}

	return &domain.Opportunity{
		UUID:             model.UUID,
		Title:            model.Title,
		ShortDescription: model.ShortDescription,
		Link:             model.Link,
		Attachments:      atts,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

func fromDBModels(models Opportunities) (domain.Opportunities, error) {
	os := make(domain.Opportunities, len(models))
	for idx, m := range models {
		o, err := fromDBModel(m)
		if err != nil {
			return nil, err
		}
		os[idx] = o
	}

	return os, nil
}
