// Package governance is a block-range channel that broadcasts one
// notification per proposal event emitted by a governance contract.
package governance

import (
	"context"
	"fmt"
	"iter"
	"math/big"
	"strings"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/infra/blockchain/evm"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/notify"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/showrunner"
)

// TaskName is the name the proposals task registers under.
const TaskName = "proposals"

// defaultMaxRange keeps eth_getLogs calls under common provider limits.
const defaultMaxRange = 2000

// Chain is the subset of the EVM client the task reads.
type Chain interface {
	BlockNumber(ctx context.Context) (int64, error)
	GetLogs(ctx context.Context, filter evm.LogFilter) ([]evm.Log, error)
}

// Config selects the watched events.
type Config struct {
	Contract string `validate:"required,eth_addr"`
	Topic    string `validate:"required"`

	// ExplorerURL, when set, is used to link each notification to its transaction.
	ExplorerURL string `validate:"omitempty,url"`

	// MaxRange caps the number of blocks per eth_getLogs call.
	MaxRange int64
}

type source struct {
	chain Chain
	cfg   Config
}

var _ showrunner.BlockSource[evm.Log] = source{}

func (s source) Head(ctx context.Context) (int64, error) {
	return s.chain.BlockNumber(ctx)
}

// Fetch splits r into chunks of at most MaxRange blocks. Overrides.Addresses
// replaces the configured contract.
func (s source) Fetch(ctx context.Context, r showrunner.BlockRange, o showrunner.Overrides) iter.Seq2[evm.Log, error] {
	addresses := []string{s.cfg.Contract}
	if len(o.Addresses) > 0 {
		addresses = o.Addresses
	}

	return func(yield func(evm.Log, error) bool) {
		for from := r.From; from <= r.To; from += s.cfg.MaxRange {
			to := min(from+s.cfg.MaxRange-1, r.To)

			logs, err := s.chain.GetLogs(ctx, evm.LogFilter{
				FromBlock: from,
				ToBlock:   to,
				Addresses: addresses,
				Topics:    [][]string{{s.cfg.Topic}},
			})
			if err != nil {
				yield(evm.Log{}, err)
				return
			}

			for _, l := range logs {
				if !yield(l, nil) {
					return
				}
			}
		}
	}
}

func (s source) Key(l evm.Log) string {
	return fmt.Sprintf("%d:%d", l.BlockNumber, l.LogIndex)
}

func (s source) Request(l evm.Log) (notify.Request, bool) {
	msg := fmt.Sprintf("A new proposal was created in block %d.", l.BlockNumber)
	if id, ok := proposalID(l); ok {
		msg = fmt.Sprintf("Proposal #%s was created in block %d.", id, l.BlockNumber)
	}

	req := notify.Request{
		Type:           notify.Broadcast,
		Title:          "New governance proposal",
		Message:        msg,
		PayloadTitle:   "New governance proposal",
		PayloadMessage: msg + " Cast your vote before it closes.",
	}

	if s.cfg.ExplorerURL != "" && l.TransactionHash != "" {
		req.CTA = strings.TrimSuffix(s.cfg.ExplorerURL, "/") + "/tx/" + l.TransactionHash
	}

	return req, true
}

// proposalID reads the first indexed topic as an unsigned integer.
func proposalID(l evm.Log) (string, bool) {
	if len(l.Topics) < 2 {
		return "", false
	}

	topic := strings.TrimPrefix(strings.ToLower(l.Topics[1]), "0x")
	id, ok := new(big.Int).SetString(topic, 16)
	if !ok {
		return "", false
	}

	return id.String(), true
}

// NewTask builds the proposals task.
func NewTask(cc *showrunner.ChannelContext, chain Chain, cfg Config, opts ...showrunner.TaskOption) *showrunner.BlockRangeTask[evm.Log] {
	if cfg.MaxRange <= 0 {
		cfg.MaxRange = defaultMaxRange
	}

	opts = append([]showrunner.TaskOption{showrunner.WithAdvancePolicy(showrunner.AdvanceAlways)}, opts...)

	return showrunner.NewBlockRangeTask(cc, TaskName, source{chain: chain, cfg: cfg}, opts...)
}
