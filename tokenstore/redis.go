// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

package tokenstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "passport-verify:request-id:"

// Redis is a Store backed by a shared Redis instance, for deployments
// running more than one relying party replica behind a load balancer.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithTTL overrides DefaultTTL for new entries.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// NewRedis constructs a Redis-backed Store on top of the supplied client.
func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		ttl:    DefaultTTL,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

func (r *Redis) Save(ctx context.Context, key, requestID string) error {
	return r.client.Set(ctx, redisKeyPrefix+key, requestID, r.ttl).Err()
}

// Load consumes the entry atomically via GETDEL, so concurrent completions
// for the same session cannot both succeed.
func (r *Redis) Load(ctx context.Context, key string) (string, error) {
	val, err := r.client.GetDel(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return val, nil
}
