// Package postgres stores checkpoints, retry records and notified markers in
// PostgreSQL. It is the alternative to the redis backend for deployments that
// already run a relational database.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS checkpoints (
	channel    TEXT        NOT NULL,
	task       TEXT        NOT NULL,
	value      BIGINT      NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (channel, task)
);

CREATE TABLE IF NOT EXISTS retry_records (
	seq            BIGSERIAL   PRIMARY KEY,
	id             UUID        NOT NULL UNIQUE,
	payload        JSONB       NOT NULL,
	last_attempted TIMESTAMPTZ NOT NULL,
	retry_count    INTEGER     NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS notified_candidates (
	key        TEXT        PRIMARY KEY,
	done       BOOLEAN     NOT NULL DEFAULT FALSE,
	expires_at TIMESTAMPTZ
);
`

type client struct {
	db    *sql.DB
	clock func() time.Time
}

// Migrate creates the tables used by the store when they do not exist yet.
func (c *client) Migrate(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (c *client) Close() error {
	return c.db.Close()
}

// NewClient wraps an open database handle.
func NewClient(db *sql.DB) *client {
	return &client{
		db:    db,
		clock: time.Now,
	}
}

// Connect opens and pings a PostgreSQL database using dsn.
func Connect(ctx context.Context, dsn string) (*client, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewClient(db), nil
}
