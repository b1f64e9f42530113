package ports

import "context"

// ListCache caches rendered list responses per resource kind. Bump
// invalidates every cached page of a kind after a mutation. Implementations
// must degrade silently: a cache error is never a request error.
type ListCache interface {
	GetPage(ctx context.Context, kind, key string) ([]byte, bool)
	SetPage(ctx context.Context, kind, key string, body []byte)
	Bump(ctx context.Context, kind string)
}
