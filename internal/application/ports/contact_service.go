package ports

import (
	"context"

	"content-manager-api/internal/domain/contact"
)

type ContactService interface {
	Find(ctx context.Context, page, limit int) (contact.Messages, int, error)
	Submit(ctx context.Context, m contact.Message) (*contact.Message, error)
}
