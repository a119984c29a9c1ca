package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/checkpoint"

	"github.com/redis/go-redis/v9"
)

// checkpointKey builds "showrunners:checkpoint:<channel>:<task>".
func checkpointKey(key checkpoint.Key) string {
	return fmt.Sprintf("%s:checkpoint:%s:%s", keyPrefix, key.Channel, key.Task)
}

// Get returns the stored checkpoint or checkpoint.ErrNoCheckpointFound.
func (c *client) Get(ctx context.Context, key checkpoint.Key) (int64, error) {
	val, err := c.conn.Get(ctx, checkpointKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = checkpoint.ErrNoCheckpointFound
		}
		return 0, err
	}

	v, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt checkpoint %s: %w", key, err)
	}
	return v, nil
}

// Set stores value with no expiration.
func (c *client) Set(ctx context.Context, key checkpoint.Key, value int64) error {
	return c.conn.Set(ctx, checkpointKey(key), value, 0).Err()
}

var _ checkpoint.Store = new(client)
