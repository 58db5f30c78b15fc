package redissvc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisService caches derived analytics tables. The dataset is immutable
// after load, so cached entries only ever expire by TTL; correctness never
// depends on the cache being reachable.
type RedisService struct {
	rdb *redis.Client
	ctx context.Context
	ttl time.Duration
}

func NewRedisService(rdb *redis.Client, ctx context.Context, ttl time.Duration) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
		ttl: ttl,
	}
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Ctx() context.Context {
	return a.ctx
}

// GetResult loads a cached derived table into dest. It returns false on miss
// or on any redis/decoding error; callers recompute in that case.
func (a *RedisService) GetResult(key string, dest any) bool {
	raw, err := a.rdb.Get(a.ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetResult stores a derived table under key with the configured TTL.
// Failures are ignored: the next request simply recomputes.
func (a *RedisService) SetResult(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	a.rdb.Set(a.ctx, key, raw, a.ttl)
}
