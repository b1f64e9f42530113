package publication

import (
	"context"
)

type Repository interface {
	Fetch(ctx context.Context, f Filter, page, limit int) (Publications, int, error)
	FetchByID(ctx context.Context, uuid UUID) (*Publication, error)
	Create(ctx context.Context, p Publication) (*Publication, error)
	Update(ctx context.Context, p Publication) (*Publication, error)
	Delete(ctx context.Context, uuid UUID) (*Publication, error)
}
