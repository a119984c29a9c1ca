// Package showrunner runs channel tasks: it reads a task's checkpoint, walks the
// candidates newer than it, hands each one to the channel's dispatcher and
// moves the checkpoint forward once the whole range has been processed.
package showrunner

import (
	"context"
	"errors"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/checkpoint"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/notify"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/logger"
)

var (
	// ErrExternalFetch wraps every failure of a task's data source.
	ErrExternalFetch = errors.New("external fetch failed")

	// ErrChannelInoperable is returned by every task of a channel whose key
	// could not be resolved at startup.
	ErrChannelInoperable = errors.New("channel is inoperable")
)

// Identity is the channel a task belongs to.
type Identity = notify.Identity

// Notifier delivers one notification.
type Notifier interface {
	Send(ctx context.Context, req notify.Request) notify.Outcome
}

// ChannelContext holds what every task of one channel shares.
type ChannelContext struct {
	Identity    Identity
	Keys        notify.KeyResolver
	Dispatcher  Notifier
	Checkpoints checkpoint.Store
	Guard       NotifiedGuard
	GuardTTL    time.Duration

	// Inoperable is set when the channel cannot sign.
	Inoperable error
}

type channelConfig struct {
	guard    NotifiedGuard
	guardTTL time.Duration
}

// ChannelOption configures NewChannelContext.
type ChannelOption func(*channelConfig)

// NewChannelContext assembles a channel and probes its signing key. A channel
// whose key cannot be resolved is returned marked inoperable rather than as an
// error so that the other channels of the process keep running.
func NewChannelContext(ctx context.Context, identity Identity, keys notify.KeyResolver, dispatcher Notifier, checkpoints checkpoint.Store, opts ...ChannelOption) *ChannelContext {
	cfg := channelConfig{
		guard:    nopGuard{},
		guardTTL: 10 * time.Minute,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cc := &ChannelContext{
		Identity:    identity,
		Keys:        keys,
		Dispatcher:  dispatcher,
		Checkpoints: checkpoints,
		Guard:       cfg.guard,
		GuardTTL:    cfg.guardTTL,
	}

	if _, err := keys.ResolveSigningKey(ctx, identity.Name); err != nil {
		logger.Error(ctx, "channel key resolution failed, channel disabled",
			"channel.name", identity.Name,
			"error", err,
		)
		cc.Inoperable = err
	}

	return cc
}

// WithNotifiedGuard registers a guard against notifying the same candidate twice.
func WithNotifiedGuard(g NotifiedGuard, ttl time.Duration) ChannelOption {
	return func(c *channelConfig) {
		c.guard = g
		c.guardTTL = ttl
	}
}

func (cc *ChannelContext) checkpointKey(task string) checkpoint.Key {
	return checkpoint.Key{Channel: cc.Identity.Name, Task: task}
}

func (cc *ChannelContext) guard() NotifiedGuard {
	if cc.Guard == nil {
		return nopGuard{}
	}
	return cc.Guard
}
