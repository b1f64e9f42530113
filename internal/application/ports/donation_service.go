package ports

import (
	"context"

	"content-manager-api/internal/domain/donation"
)

type DonationService interface {
	Find(ctx context.Context, page, limit int) (donation.Donations, int, error)
	FindByID(ctx context.Context, uuid donation.UUID) (*donation.Donation, error)
	Create(ctx context.Context, d donation.Donation) (*donation.Donation, error)
	Update(ctx context.Context, uuid donation.UUID, upd donation.Update) (*donation.Donation, error)
	Delete(ctx context.Context, uuid donation.UUID) (bool, error)
}
