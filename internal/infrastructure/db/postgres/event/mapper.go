package event

import (
	domain "content-manager-api/internal/domain/event"
	"content-manager-api/internal/infrastructure/db/postgres"
)

func fromDBModel(model *Event) (*domain.Event, error) {
	atts, err := postgres.UnmarshalAttachments(model.Attachments)
	if err != nil {
		return nil, err
	}

	return &domain.Event{
		UUID:             model.UUID,
		Title:            model.Title,
		ShortDescription: model.ShortDescription,
		Link:             model.Link,
		EventDate:        model.EventDate,
		Attachments:      atts,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

func fromDBModels(models Events) (domain.Events, error) {
	es := make(domain.Events, len(models))
	for idx, m := range models {
		e, err := fromDBModel(m)
		if err != nil {
			return nil, err
		}
		es[idx] = e
	}

	return es, nil
}
