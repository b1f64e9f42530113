package opportunity

import (
	"context"
)

type Repository interface {
	Fetch(ctx context.Context, page, limit int) (Opportunities, int, error)
	FetchByID(ctx context.Context, uuid UUID) (*Opportunity, error)
	Create(ctx context.Context, o Opportunity) (*Opportunity, error)
	Update(ctx context.Context, o Opportunity) (*Opportunity, error)
	Delete(ctx context.Context, uuid UUID) (*Opportunity, error)
}
