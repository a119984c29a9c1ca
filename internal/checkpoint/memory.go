package checkpoint

import (
	"context"
	"sync"
)

// Memory is a process-local Store.
type Memory struct {
	mu     sync.RWMutex
	values map[Key]int64
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{values: make(map[Key]int64)}
}

func (m *Memory) Get(_ context.Context, key Key) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return 0, ErrNoCheckpointFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key Key, value int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Nop never remembers anything; every Get reports ErrNoCheckpointFound.
type Nop struct{}

var _ Store = Nop{}

func (Nop) Get(context.Context, Key) (int64, error) { return 0, ErrNoCheckpointFound }

func (Nop) Set(context.Context, Key, int64) error { return nil }
