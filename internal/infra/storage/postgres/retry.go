package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/notify"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/retryqueue"

	"github.com/google/uuid"
)

func (c *client) Insert(ctx context.Context, payload notify.Payload) error {
	record, err := retryqueue.NewRecord(payload, c.clock())
	if err != nil {
		return err
	}

	data, err := json.Marshal(record.Payload)
	if err != nil {
		return err
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO retry_records (id, payload, last_attempted, retry_count)
		VALUES ($1, $2, $3, $4);
	`, record.ID, data, record.LastAttempted, record.RetryCount)
	return err
}

// FindPending relies on the serial seq column for insertion order.
func (c *client) FindPending(ctx context.Context, maxRetries, limit int) ([]retryqueue.Record, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, payload, last_attempted, retry_count
		FROM retry_records
		WHERE retry_count < $1
		ORDER BY seq
		LIMIT $2;
	`, maxRetries, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []retryqueue.Record
	for rows.Next() {
		var (
			record retryqueue.Record
			data   []byte
		)

		if err := rows.Scan(&record.ID, &data, &record.LastAttempted, &record.RetryCount); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(data, &record.Payload); err != nil {
			return nil, fmt.Errorf("corrupt retry record %s: %w", record.ID, err)
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

func (c *client) Save(ctx context.Context, record retryqueue.Record) error {
	data, err := json.Marshal(record.Payload)
	if err != nil {
		return err
	}

	res, err := c.db.ExecContext(ctx, `
		UPDATE retry_records
		SET payload = $1, last_attempted = $2, retry_count = $3
		WHERE id = $4;
	`, data, record.LastAttempted, record.RetryCount, record.ID)
	if err != nil {
		return err
	}

	return expectAffected(res)
}

func (c *client) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := c.db.ExecContext(ctx, `
		DELETE FROM retry_records
		WHERE id = $1;
	`, id)
	if err != nil {
		return err
	}

	return expectAffected(res)
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return retryqueue.ErrRecordNotFound
	}
	return nil
}

var _ retryqueue.Store = new(client)
