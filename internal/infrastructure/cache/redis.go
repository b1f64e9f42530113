package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"content-manager-api/config"
	"content-manager-api/internal/application/ports"
)

// Redis caches rendered list pages under versioned keys. Bump increments the
// kind's version counter, which orphans every previously cached page without
// scanning key space.
type Redis struct {
	logger *zap.Logger
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(ctx context.Context, logger *zap.Logger, cfg config.Redis) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Redis{
		logger: logger,
		client: client,
		ttl:    cfg.ListTTL,
	}, nil
}

func (r *Redis) GetPage(ctx context.Context, kind, key string) ([]byte, bool) {
	full, err := r.pageKey(ctx, kind, key)
	if err != nil {
		r.logger.Warn("cache get", zap.Error(err))
		return nil, false
	}

	b, err := r.client.Get(ctx, full).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("cache get", zap.Error(err))
		}
		return nil, false
	}

	return b, true
}

func (r *Redis) SetPage(ctx context.Context, kind, key string, body []byte) {
	full, err := r.pageKey(ctx, kind, key)
	if err != nil {
		r.logger.Warn("cache set", zap.Error(err))
		return
	}

	if err = r.client.Set(ctx, full, body, r.ttl).Err(); err != nil {
		r.logger.Warn("cache set", zap.Error(err))
	}
}

func (r *Redis) Bump(ctx context.Context, kind string) {
	if err := r.client.Incr(ctx, "ver:"+kind).Err(); err != nil {
		r.logger.Warn("cache bump", zap.Error(err))
	}
}

func (r *Redis) pageKey(ctx context.Context, kind, key string) (string, error) {
	ver, err := r.client.Get(ctx, "ver:"+kind).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}

	return fmt.Sprintf("list:%s:%d:%s", kind, ver, key), nil
}

// Noop is used when no redis address is configured.
type Noop struct{}

func (Noop) GetPage(context.Context, string, string) ([]byte, bool) { return nil, false }
func (Noop) SetPage(context.Context, string, string, []byte)       {}
func (Noop) Bump(context.Context, string)                          {}

var _ ports.ListCache = (*Redis)(nil)
var _ ports.ListCache = Noop{}
