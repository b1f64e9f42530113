package donation

import (
	"context"
)

type Repository interface {
	Fetch(ctx context.Context, page, limit int) (Donations, int, error)
	FetchByID(ctx context.Context, uuid UUID) (*Donation, error)
	Create(ctx context.Context, d Donation) (*Donation, error)
	Update(ctx context.Context, d Donation) (*Donation, error)
	Delete(ctx context.Context, uuid UUID) (*Donation, error)
}
