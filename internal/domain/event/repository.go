package event

import (
	"context"
)

type Repository interface {
	Fetch(ctx context.Context, f Filter, page, limit int) (Events, int, error)
	FetchByID(ctx context.Context, uuid UUID) (*Event, error)
	Create(ctx context.Context, e Event) (*Event, error)
	Update(ctx context.Context, e Event) (*Event, error)
	Delete(ctx context.Context, uuid UUID) (*Event, error)
}
