package credstore

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"fabforge/playfab"
)

const defaultRedisPrefix = "fabforge:credentials:"

// Redis shares credentials between processes through a Redis server.
type Redis struct {
	cli    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

type RedisOption func(*Redis)

// WithPrefix sets the key prefix. The default is "fabforge:credentials:".
func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// WithTTL expires saved credentials after ttl. Zero keeps them forever.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

func NewRedis(cli redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{cli: cli, prefix: defaultRedisPrefix}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Redis) Load(ctx context.Context, key string) (playfab.AuthenticationContext, error) {
	var ac playfab.AuthenticationContext
	data, err := r.cli.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ac, ErrNotFound
	}
	if err != nil {
		return ac, errors.WithMessagef(err, "redis get %q", key)
	}
	if err := sonic.ConfigStd.Unmarshal(data, &ac); err != nil {
		return ac, errors.WithMessagef(err, "decode credentials %q", key)
	}
	return ac, nil
}

func (r *Redis) Save(ctx context.Context, key string, ac playfab.AuthenticationContext) error {
	data, err := sonic.ConfigStd.Marshal(ac)
	if err != nil {
		return errors.WithMessagef(err, "encode credentials %q", key)
	}
	if err := r.cli.Set(ctx, r.prefix+key, data, r.ttl).Err(); err != nil {
		return errors.WithMessagef(err, "redis set %q", key)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.cli.Del(ctx, r.prefix+key).Err(); err != nil {
		return errors.WithMessagef(err, "redis del %q", key)
	}
	return nil
}
