package wallet

import (
	"context"
	"errors"
	"sync"
)

// ErrNoWalletSelected is returned by selectors that cannot pick a wallet.
var ErrNoWalletSelected = errors.New("no wallet selected")

// Selector picks the currently active wallet of a channel. Implementations may
// look at balances, nonces or rate limits; the pool itself is never mutated.
type Selector interface {
	Select(ctx context.Context, channel string, wallets []Entry) (int, error)
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(ctx context.Context, channel string, wallets []Entry) (int, error)

func (f SelectorFunc) Select(ctx context.Context, channel string, wallets []Entry) (int, error) {
	return f(ctx, channel, wallets)
}

// RoundRobin rotates through a channel's wallets on every call.
type RoundRobin struct {
	mu   sync.Mutex
	next map[string]int
}

var _ Selector = (*RoundRobin)(nil)

// NewRoundRobin returns an empty RoundRobin selector.
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{next: make(map[string]int)}
}

func (r *RoundRobin) Select(_ context.Context, channel string, wallets []Entry) (int, error) {
	if len(wallets) == 0 {
		return 0, ErrNoWalletSelected
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.next[channel] % len(wallets)
	r.next[channel] = i + 1
	return i, nil
}
