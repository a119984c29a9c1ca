// Package wallet owns the signing keys of every channel: it admits keys into a
// per-channel pool at startup and resolves the key a channel should sign with.
package wallet

import (
	"context"
	"fmt"
)

// Resolver resolves the signing key of a channel from a Pool through a Selector.
type Resolver struct {
	pool     Pool
	selector Selector
}

// NewResolver returns a Resolver. A nil selector defaults to round-robin.
func NewResolver(pool Pool, selector Selector) *Resolver {
	if selector == nil {
		selector = NewRoundRobin()
	}

	return &Resolver{
		pool:     pool,
		selector: selector,
	}
}

// ResolveSigningKey returns the key channel should currently sign with. Every
// failure wraps ErrConfiguration.
func (r *Resolver) ResolveSigningKey(ctx context.Context, channel string) (Key, error) {
	wallets := r.pool.Wallets(channel)
	if len(wallets) == 0 {
		return Key{}, fmt.Errorf("%w: channel %q has no wallets", ErrConfiguration, channel)
	}

	i, err := r.selector.Select(ctx, channel, wallets)
	if err != nil {
		return Key{}, fmt.Errorf("%w: selecting wallet for %q: %w", ErrConfiguration, channel, err)
	}

	if i < 0 || i >= len(wallets) {
		return Key{}, fmt.Errorf("%w: selector returned wallet index %d for %q with %d wallets", ErrConfiguration, i, channel, len(wallets))
	}

	return wallets[i].Key, nil
}

// Channels lists the channels the resolver can serve.
func (r *Resolver) Channels() []string {
	return r.pool.Channels()
}
