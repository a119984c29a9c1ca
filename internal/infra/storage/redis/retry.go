package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/notify"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/retryqueue"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// retryScanBatch is how many queued ids FindPending reads per round trip.
const retryScanBatch = 100

var (
	// retryQueueKey is a sorted set of record ids scored by insertion sequence.
	retryQueueKey = fmt.Sprintf("%s:retry:queue", keyPrefix)

	// retrySequenceKey is the counter behind the queue scores.
	retrySequenceKey = fmt.Sprintf("%s:retry:seq", keyPrefix)
)

// retryRecordKey builds "showrunners:retry:record:<id>".
func retryRecordKey(id uuid.UUID) string {
	return fmt.Sprintf("%s:retry:record:%s", keyPrefix, id)
}

// Insert queues payload with a zero retry count.
func (c *client) Insert(ctx context.Context, payload notify.Payload) error {
	record, err := retryqueue.NewRecord(payload, time.Now())
	if err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	seq, err := c.conn.Incr(ctx, retrySequenceKey).Result()
	if err != nil {
		return err
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, retryRecordKey(record.ID), data, 0)
		pipe.ZAdd(ctx, retryQueueKey, redis.Z{Score: float64(seq), Member: record.ID.String()})
		return nil
	})
	return err
}

// FindPending walks the queue in insertion order.
func (c *client) FindPending(ctx context.Context, maxRetries, limit int) ([]retryqueue.Record, error) {
	var pending []retryqueue.Record

	for start := int64(0); len(pending) < limit; start += retryScanBatch {
		ids, err := c.conn.ZRange(ctx, retryQueueKey, start, start+retryScanBatch-1).Result()
		if err != nil {
			return nil, err
		}

		if len(ids) == 0 {
			break
		}

		keys := make([]string, len(ids))
		for i, id := range ids {
			parsed, err := uuid.Parse(id)
			if err != nil {
				return nil, fmt.Errorf("corrupt retry queue entry %q: %w", id, err)
			}
			keys[i] = retryRecordKey(parsed)
		}

		values, err := c.conn.MGet(ctx, keys...).Result()
		if err != nil {
			return nil, err
		}

		for i, v := range values {
			s, ok := v.(string)
			if !ok {
				// Deleted between ZRANGE and MGET.
				continue
			}

			var record retryqueue.Record
			if err := json.Unmarshal([]byte(s), &record); err != nil {
				return nil, fmt.Errorf("corrupt retry record %s: %w", ids[i], err)
			}

			if record.RetryCount < maxRetries {
				pending = append(pending, record)
				if len(pending) == limit {
					break
				}
			}
		}
	}

	return pending, nil
}

// Save overwrites an existing record.
func (c *client) Save(ctx context.Context, record retryqueue.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	ok, err := c.conn.SetXX(ctx, retryRecordKey(record.ID), data, 0).Result()
	if err != nil {
		return err
	}

	if !ok {
		return retryqueue.ErrRecordNotFound
	}
	return nil
}

// Delete removes a record and its queue entry.
func (c *client) Delete(ctx context.Context, id uuid.UUID) error {
	var deleted *redis.IntCmd

	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, retryRecordKey(id))
		pipe.ZRem(ctx, retryQueueKey, id.String())
		return nil
	})
	if err != nil {
		return err
	}

	if deleted.Val() == 0 {
		return retryqueue.ErrRecordNotFound
	}
	return nil
}

var _ retryqueue.Store = new(client)
