package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/checkpoint"
)

func (c *client) Get(ctx context.Context, key checkpoint.Key) (int64, error) {
	var value int64

	err := c.db.QueryRowContext(ctx, `
		SELECT value
		FROM checkpoints
		WHERE channel = $1 AND task = $2;
	`, key.Channel, key.Task).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, checkpoint.ErrNoCheckpointFound
	}
	if err != nil {
		return 0, err
	}

	return value, nil
}

func (c *client) Set(ctx context.Context, key checkpoint.Key, value int64) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO checkpoints (channel, task, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (channel, task) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;
	`, key.Channel, key.Task, value)
	return err
}

var _ checkpoint.Store = new(client)
