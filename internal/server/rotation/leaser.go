package rotation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Leaser grants short exclusive leases so only one server instance rotates a
// given session per interval.
type Leaser interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// LocalLeaser always grants the lease. It fits a single-instance deployment.
type LocalLeaser struct{}

func (LocalLeaser) Acquire(context.Context, string, time.Duration) (bool, error) { return true, nil }

const leaseKeyPrefix = "qrattend:rotation:"

// RedisLeaser takes leases with SET NX PX, so the first instance to ask for a
// key holds it until the TTL lapses.
type RedisLeaser struct {
	client redis.UniversalClient
	owner  string
}

// NewRedisLeaser returns a leaser that records owner as the lease holder.
func NewRedisLeaser(client redis.UniversalClient, owner string) *RedisLeaser {
	return &RedisLeaser{client: client, owner: owner}
}

func (l *RedisLeaser) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, leaseKeyPrefix+key, l.owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis lease %s: %w", key, err)
	}
	return ok, nil
}

// NewRedisClient builds a client for the lease store.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
}
