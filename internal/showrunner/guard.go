package showrunner

import (
	"context"
	"errors"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/logger"
)

var (
	// ErrAlreadyNotified means a previous run already delivered the candidate.
	ErrAlreadyNotified = errors.New("candidate already notified")

	// ErrClaimInProgress means another run holds the candidate right now.
	ErrClaimInProgress = errors.New("candidate claimed by another run")
)

// NotifiedGuard remembers candidates that were already handed to the API so
// that a run repeating a range after a partial failure does not notify twice.
//
// Claim reserves key for ttl. MarkDone makes the reservation permanent. A claim
// that is never marked done expires and can be taken again.
type NotifiedGuard interface {
	Claim(ctx context.Context, key string, ttl time.Duration) error
	MarkDone(ctx context.Context, key string) error
}

type nopGuard struct{}

var _ NotifiedGuard = nopGuard{}

func (nopGuard) Claim(context.Context, string, time.Duration) error { return nil }

func (nopGuard) MarkDone(context.Context, string) error { return nil }

func guardKey(cc *ChannelContext, task, candidate string) string {
	return cc.Identity.Name + ":" + task + ":" + candidate
}

// claim reports whether the candidate should be dispatched. Guard storage
// failures do not block delivery.
func claim(ctx context.Context, cc *ChannelContext, key string) bool {
	err := cc.guard().Claim(ctx, key, cc.GuardTTL)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrAlreadyNotified), errors.Is(err, ErrClaimInProgress):
		logger.Debug(ctx, "candidate skipped", "candidate.key", key, "reason", err)
		return false
	default:
		logger.Warn(ctx, "notified guard unavailable", "candidate.key", key, "error", err)
		return true
	}
}

func markDone(ctx context.Context, cc *ChannelContext, key string) {
	if err := cc.guard().MarkDone(ctx, key); err != nil {
		logger.Warn(ctx, "could not mark candidate as notified", "candidate.key", key, "error", err)
	}
}
