package announcement

import (
	"context"
)

type Repository interface {
	Fetch(ctx context.Context, f Filter, page, limit int) (Announcements, int, error)
	FetchByID(ctx context.Context, uuid UUID) (*Announcement, error)
	Create(ctx context.Context, a Announcement) (*Announcement, error)
	Update(ctx context.Context, a Announcement) (*Announcement, error)
	Delete(ctx context.Context, uuid UUID) (*Announcement, error)
}
