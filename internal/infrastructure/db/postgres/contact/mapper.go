package contact

import (
	domain "content-manager-api/internal/domain/contact"
)

func fromDBModel(model *Message) *domain.Message {
	return &domain.Message{
		UUID:    model.UUID,
		Name:    model.Name,
		Email:   model.Email,
		Phone:   model.Phone,
		Message: model.Message,

		CreatedAt: model.CreatedAt,
	}
}

func fromDBModels(models Messages) domain.Messages {
	ms := make(domain.Messages, len(models))
	for idx, m := range models {
		ms[idx] = fromDBModel(m)
	}

	return ms
}
