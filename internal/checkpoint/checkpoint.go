// Package checkpoint persists the progress marker of every channel task: the
// last processed block number or unix timestamp.
package checkpoint

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoCheckpointFound is returned by Get when nothing was stored for the key yet.
	ErrNoCheckpointFound = errors.New("no checkpoint found")

	// ErrCheckpointRegression is returned by Advance when the new value is below the stored one.
	ErrCheckpointRegression = errors.New("checkpoint cannot move backwards")
)

// Key identifies the checkpoint of one task of one channel.
type Key struct {
	Channel string
	Task    string
}

func (k Key) String() string {
	return k.Channel + ":" + k.Task
}

// Store persists checkpoints.
type Store interface {
	// Get returns the stored value or ErrNoCheckpointFound.
	Get(ctx context.Context, key Key) (int64, error)

	// Set overwrites the stored value. Concurrent writers resolve last-write-wins.
	Set(ctx context.Context, key Key, value int64) error
}

// Advance stores value for key unless it is lower than the current checkpoint.
// Storing the same value again is a no-op.
func Advance(ctx context.Context, store Store, key Key, value int64) error {
	current, err := store.Get(ctx, key)
	switch {
	case errors.Is(err, ErrNoCheckpointFound):
	case err != nil:
		return err
	case value < current:
		return fmt.Errorf("%w: %s at %d, got %d", ErrCheckpointRegression, key, current, value)
	case value == current:
		return nil
	}

	return store.Set(ctx, key, value)
}
