package contact

import (
	"context"
)

type Repository interface {
	Fetch(ctx context.Context, page, limit int) (Messages, int, error)
	Create(ctx context.Context, m Message) (*Message, error)
}
