package pos

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const listCacheKey = "campuscoffee:pos:list"

// cachedRepo serves List from Redis and drops the cached list on every write.
// Redis failures are logged and never fail the call.
type cachedRepo struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedRepository(next Repository, client *redis.Client, ttl time.Duration, logger *zap.Logger) Repository {
	return &cachedRepo{next: next, client: client, ttl: ttl, logger: logger}
}

func (r *cachedRepo) List(ctx context.Context) ([]*Pos, error) {
	raw, err := r.client.Get(ctx, listCacheKey).Bytes()
	switch {
	case err == nil:
		var items []*Pos
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		r.logger.Warn("discarding unreadable pos list cache entry")
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("pos list cache read failed", zap.Error(err))
	}

	items, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(items); err == nil {
		if err := r.client.Set(ctx, listCacheKey, data, r.ttl).Err(); err != nil {
			r.logger.Warn("pos list cache write failed", zap.Error(err))
		}
	}
	return items, nil
}

func (r *cachedRepo) Create(ctx context.Context, items []*Pos) error {
	defer r.invalidate(ctx)
	return r.next.Create(ctx, items)
}

func (r *cachedRepo) Update(ctx context.Context, p *Pos) error {
	defer r.invalidate(ctx)
	return r.next.Update(ctx, p)
}

func (r *cachedRepo) DeleteAll(ctx context.Context) error {
	defer r.invalidate(ctx)
	return r.next.DeleteAll(ctx)
}

func (r *cachedRepo) GetByID(ctx context.Context, id uuid.UUID) (*Pos, error) {
	return r.next.GetByID(ctx, id)
}

func (r *cachedRepo) GetByName(ctx context.Context, name string) (*Pos, error) {
	return r.next.GetByName(ctx, name)
}

// invalidate must run even after ctx is cancelled; the write may have committed.
func (r *cachedRepo) invalidate(ctx context.Context) {
	if err := r.client.Del(context.WithoutCancel(ctx), listCacheKey).Err(); err != nil {
		r.logger.Warn("pos list cache invalidation failed", zap.Error(err))
	}
}
