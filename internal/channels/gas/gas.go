// Package gas is a block-range channel that broadcasts a warning when the
// average base fee over the newly produced blocks crosses a threshold.
package gas

import (
	"context"
	"fmt"
	"iter"
	"math/big"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/notify"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/showrunner"
)

// TaskName is the name the price task registers under.
const TaskName = "price"

var weiPerGwei = big.NewFloat(1e9)

// Chain is the subset of the EVM client the task reads.
type Chain interface {
	BlockNumber(ctx context.Context) (int64, error)
	AverageBaseFee(ctx context.Context, from, to int64) (*big.Int, error)
}

// Reading is the average base fee in wei over an inclusive block range.
type Reading struct {
	From    int64
	To      int64
	Average *big.Int
}

type source struct {
	chain     Chain
	threshold *big.Int
}

var _ showrunner.BlockSource[Reading] = source{}

func (s source) Head(ctx context.Context) (int64, error) {
	return s.chain.BlockNumber(ctx)
}

func (s source) Fetch(ctx context.Context, r showrunner.BlockRange, _ showrunner.Overrides) iter.Seq2[Reading, error] {
	avg, err := s.chain.AverageBaseFee(ctx, r.From, r.To)
	if err != nil {
		return showrunner.Fail[Reading](err)
	}

	return showrunner.Slice([]Reading{{From: r.From, To: r.To, Average: avg}})
}

func (s source) Key(r Reading) string {
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

func (s source) Request(r Reading) (notify.Request, bool) {
	if r.Average == nil || r.Average.Cmp(s.threshold) <= 0 {
		return notify.Request{}, false
	}

	msg := fmt.Sprintf("Average base fee was %s gwei over blocks %d to %d, above the %s gwei alert level.",
		gwei(r.Average), r.From, r.To, gwei(s.threshold))

	return notify.Request{
		Type:           notify.Broadcast,
		Title:          "Gas price is high",
		Message:        msg,
		PayloadTitle:   "Gas price alert",
		PayloadMessage: msg,
	}, true
}

func gwei(wei *big.Int) string {
	f := new(big.Float).SetInt(wei)
	return f.Quo(f, weiPerGwei).Text('f', 2)
}

// NewTask builds the price task. Thresholds are in wei.
func NewTask(cc *showrunner.ChannelContext, chain Chain, threshold *big.Int, opts ...showrunner.TaskOption) *showrunner.BlockRangeTask[Reading] {
	opts = append([]showrunner.TaskOption{showrunner.WithAdvancePolicy(showrunner.AdvanceAlways)}, opts...)

	return showrunner.NewBlockRangeTask(cc, TaskName, source{chain: chain, threshold: threshold}, opts...)
}
