package publication

import (
	domain "content-manager-api/internal/domain/publication"
	"content-manager-api/internal/infrastructure/db/postgres"
)

func fromDBModel(model *Publication) (*domain.Publication, error) {
	atts, err := postgres.UnmarshalAttachments(model.Attachments)
	if err != nil {
		return nil, err
	}

	return &domain.Publication{
		UUID:             model.UUID,
		Title:            model.Title,
		ShortDescription: model.ShortDescription,
		Category:         model.Category,
		IsOngoing:        model.IsOngoing,
		Disclaimer:       model.Disclaimer,
		Attachments:      atts,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

func fromDBModels(models Publications) (domain.Publications, error) {
	ps := make(domain.Publications, len(models))
	for idx, m := range models {
		p, err := fromDBModel(m)
		if err != nil {
			return nil, err
		}
		ps[idx] = p
	}

	return ps, nil
}
