package blog

import (
	"context"
)

type Repository interface {
	Fetch(ctx context.Context, page, limit int) (Blogs, int, error)
	FetchByID(ctx context.Context, uuid UUID) (*Blog, error)
	Create(ctx context.Context, b Blog) (*Blog, error)
	Update(ctx context.Context, b Blog) (*Blog, error)
	Delete(ctx context.Context, uuid UUID) (*Blog, error)
}
