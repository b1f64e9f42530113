package teammember

import (
	"context"
)

type Repository interface {
	Fetch(ctx context.Context, f Filter, page, limit int) (TeamMembers, int, error)
	FetchByID(ctx context.Context, uuid UUID) (*TeamMember, error)
	Create(ctx context.Context, m TeamMember) (*TeamMember, error)
	Update(ctx context.Context, m TeamMember) (*TeamMember, error)
	Delete(ctx context.Context, uuid UUID) (*TeamMember, error)
}
