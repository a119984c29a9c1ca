package retryqueue

import (
	"context"
	"errors"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/notify"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned by Save and Delete for unknown ids.
var ErrRecordNotFound = errors.New("retry record not found")

// Record is a failed notification waiting for the next sweep.
type Record struct {
	ID            uuid.UUID      `json:"id"`
	Payload       notify.Payload `json:"payload"`
	LastAttempted time.Time      `json:"lastAttempted"`
	RetryCount    int            `json:"retryCount"`
}

// NewRecord wraps a freshly failed payload. IDs are time ordered so that
// insertion order survives any store that sorts by id.
func NewRecord(payload notify.Payload, attemptedAt time.Time) (Record, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Record{}, err
	}

	return Record{
		ID:            id,
		Payload:       payload,
		LastAttempted: attemptedAt,
		RetryCount:    0,
	}, nil
}

// Store persists retry records.
type Store interface {
	notify.RetryStore

	// FindPending returns up to limit records with RetryCount < maxRetries in
	// insertion order.
	FindPending(ctx context.Context, maxRetries, limit int) ([]Record, error)

	// Save overwrites an existing record.
	Save(ctx context.Context, record Record) error

	// Delete removes a record.
	Delete(ctx context.Context, id uuid.UUID) error
}
