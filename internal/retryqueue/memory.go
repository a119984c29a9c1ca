package retryqueue

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/notify"

	"github.com/google/uuid"
)

// Memory is a process-local Store.
type Memory struct {
	mu      sync.Mutex
	records []Record
	clock   func() time.Time
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{clock: time.Now}
}

func (m *Memory) Insert(_ context.Context, payload notify.Payload) error {
	record, err := NewRecord(payload, m.clock())
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, record)
	return nil
}

func (m *Memory) FindPending(_ context.Context, maxRetries, limit int) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var pending []Record
	for _, r := range m.records {
		if len(pending) >= limit {
			break
		}
		if r.RetryCount < maxRetries {
			pending = append(pending, r)
		}
	}
	return pending, nil
}

func (m *Memory) Save(_ context.Context, record Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(record.ID)
	if i < 0 {
		return ErrRecordNotFound
	}

	m.records[i] = record
	return nil
}

func (m *Memory) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return ErrRecordNotFound
	}

	m.records = slices.Delete(m.records, i, i+1)
	return nil
}

// Records returns a copy of every stored record.
func (m *Memory) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.records)
}

func (m *Memory) index(id uuid.UUID) int {
	return slices.IndexFunc(m.records, func(r Record) bool { return r.ID == id })
}
