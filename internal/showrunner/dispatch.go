package showrunner

import (
	"context"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/notify"
)

// Candidate turns a fetched item into a notification. Key must be stable
// across runs; Request returns false to skip the item.
type Candidate[T any] interface {
	Key(item T) string
	Request(item T) (notify.Request, bool)
}

// dispatch hands one candidate to the channel dispatcher, at most once per run.
func dispatch[T any](ctx context.Context, cc *ChannelContext, task string, mode RunMode, c Candidate[T], item T, summary *Summary) {
	summary.Candidates++

	req, ok := c.Request(item)
	if !ok {
		summary.Skipped++
		return
	}

	transmit := mode.Transmits()
	if !transmit {
		req.Simulate = true
	}

	key := guardKey(cc, task, c.Key(item))
	if transmit && !claim(ctx, cc, key) {
		summary.Skipped++
		return
	}

	outcome := cc.Dispatcher.Send(ctx, req)
	summary.record(outcome)

	if transmit && (outcome == notify.OutcomeSent || outcome == notify.OutcomeFailedQueued) {
		markDone(ctx, cc, key)
	}
}
