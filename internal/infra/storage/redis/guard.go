package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/showrunner"

	"github.com/redis/go-redis/v9"
)

// notifiedDone is the terminal value of a guard key.
const notifiedDone = "done"

// notifiedKey builds "showrunners:notified:<channel>:<task>:<candidate>".
func notifiedKey(key string) string {
	return fmt.Sprintf("%s:notified:%s", keyPrefix, key)
}

// Claim reserves key for ttl.
//
// It returns showrunner.ErrAlreadyNotified when the key was marked done and
// showrunner.ErrClaimInProgress when another run holds an unexpired claim.
func (c *client) Claim(ctx context.Context, key string, ttl time.Duration) error {
	k := notifiedKey(key)

	val, err := c.conn.Get(ctx, k).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if val == notifiedDone {
		return showrunner.ErrAlreadyNotified
	}

	ok, err := c.conn.SetNX(ctx, k, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return showrunner.ErrClaimInProgress
	}

	return nil
}

// MarkDone makes the claim permanent.
func (c *client) MarkDone(ctx context.Context, key string) error {
	return c.conn.Set(ctx, notifiedKey(key), notifiedDone, 0).Err()
}

var _ showrunner.NotifiedGuard = new(client)
