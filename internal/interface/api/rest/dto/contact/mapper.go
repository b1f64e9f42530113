package contact

import (
	"content-manager-api/internal/domain/contact"
)

func ToResponseMessage(d contact.Message) Message {
	return Message{
		UUID:      d.UUID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
	}
}

func ToResponseMessages(ds contact.Messages) Messages {
	ms := make(Messages, len(ds))
	for idx, d := range ds {
		ms[idx] = ToResponseMessage(*d)
	}

	return ms
}

func ToDomainMessage(r Request) contact.Message {
	return contact.Message{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}
