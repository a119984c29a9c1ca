package postgres

import (
	"context"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/showrunner"
)

// Claim inserts an open claim or takes over an expired one. A row marked
// done is never taken over.
func (c *client) Claim(ctx context.Context, key string, ttl time.Duration) error {
	now := c.clock()

	res, err := c.db.ExecContext(ctx, `
		INSERT INTO notified_candidates (key, done, expires_at)
		VALUES ($1, FALSE, $2)
		ON CONFLICT (key) DO UPDATE
		SET expires_at = EXCLUDED.expires_at
		WHERE notified_candidates.done = FALSE AND notified_candidates.expires_at <= $3;
	`, key, now.Add(ttl), now)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n > 0 {
		return nil
	}

	var done bool
	if err := c.db.QueryRowContext(ctx, `
		SELECT done
		FROM notified_candidates
		WHERE key = $1;
	`, key).Scan(&done); err != nil {
		return err
	}

	if done {
		return showrunner.ErrAlreadyNotified
	}
	return showrunner.ErrClaimInProgress
}

func (c *client) MarkDone(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO notified_candidates (key, done, expires_at)
		VALUES ($1, TRUE, NULL)
		ON CONFLICT (key) DO UPDATE
		SET done = TRUE, expires_at = NULL;
	`, key)
	return err
}

var _ showrunner.NotifiedGuard = new(client)
