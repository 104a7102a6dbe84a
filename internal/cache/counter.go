// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// counterPrefix namespaces all rate-limit keys in Valkey.
const counterPrefix = "ratelimit:"

// WindowCounter is a fixed-window request counter shared by every replica
// through Valkey. Each key allows limit hits per window; the window starts
// at the first hit and the key expires with it.
type WindowCounter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewWindowCounter creates a counter allowing limit hits per window.
func NewWindowCounter(client *redis.Client, limit int, window time.Duration) *WindowCounter {
	return &WindowCounter{client: client, limit: int64(limit), window: window}
}

// Allow records one hit for key and reports whether it is within the limit.
func (c *WindowCounter) Allow(ctx context.Context, key string) (bool, error) {
	k := counterPrefix + key

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	// NX keeps the expiry set by the first hit of the window.
	pipe.Do(ctx, "PEXPIRE", k, c.window.Milliseconds(), "NX")
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate counter %s: %w", key, err)
	}

	return incr.Val() <= c.limit, nil
}
