package lock

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Guard hands out short-lived exclusive claims on a key. Holders release the
// claim when done; the ttl only bounds claims left behind by a crash.
type Guard interface {
	// Acquire reports true when the caller now owns key for ttl.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// RedisGuard shares claims across instances.
type RedisGuard struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisGuard(rdb *redis.Client) *RedisGuard {
	return &RedisGuard{rdb: rdb, prefix: "journal:guard:"}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return g.rdb.SetNX(ctx, g.prefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.rdb.Del(ctx, g.prefix+key).Err()
}

// LocalGuard is the single-instance fallback when redis is not configured.
type LocalGuard struct {
	cache *cache.Cache
}

func NewLocalGuard() *LocalGuard {
	return &LocalGuard{cache: cache.New(5*time.Minute, 10*time.Minute)}
}

func (g *LocalGuard) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	// Add fails when an unexpired item already exists
	if err := g.cache.Add(key, struct{}{}, ttl); err != nil {
		return false, nil
	}
	return true, nil
}

func (g *LocalGuard) Release(_ context.Context, key string) error {
	g.cache.Delete(key)
	return nil
}

// FallbackGuard tries redis first and degrades to the local guard when redis
// errors, so a redis outage never blocks enrichment.
type FallbackGuard struct {
	primary Guard
	local   Guard
}

func NewGuard(rdb *redis.Client) Guard {
	local := NewLocalGuard()
	if rdb == nil {
		return local
	}
	return &FallbackGuard{primary: NewRedisGuard(rdb), local: local}
}

func (g *FallbackGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := g.primary.Acquire(ctx, key, ttl)
	if err != nil {
		return g.local.Acquire(ctx, key, ttl)
	}
	return ok, nil
}

// Release clears both sides since Acquire may have landed on either.
func (g *FallbackGuard) Release(ctx context.Context, key string) error {
	_ = g.local.Release(ctx, key)
	return g.primary.Release(ctx, key)
}
