package evm

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/types"
)

// Log is one contract event.
type Log struct {
	Address         string   `json:"address"`
	Topics          []string `json:"topics"`
	Data            string   `json:"data"`
	BlockNumber     int64    `json:"blockNumber"`
	TransactionHash string   `json:"transactionHash"`
	LogIndex        int64    `json:"logIndex"`
	Removed         bool     `json:"removed"`
}

type logResponse struct {
	Address         string    `json:"address"`
	Topics          []string  `json:"topics"`
	Data            string    `json:"data"`
	BlockNumber     types.Hex `json:"blockNumber"`
	TransactionHash string    `json:"transactionHash"`
	LogIndex        types.Hex `json:"logIndex"`
	Removed         bool      `json:"removed"`
}

func (l logResponse) toLog() Log {
	return Log{
		Address:         l.Address,
		Topics:          l.Topics,
		Data:            l.Data,
		BlockNumber:     l.BlockNumber.Int64(),
		TransactionHash: l.TransactionHash,
		LogIndex:        l.LogIndex.Int64(),
		Removed:         l.Removed,
	}
}

// LogFilter selects logs of [FromBlock, ToBlock]. Topics follow eth_getLogs
// positional matching; an empty position matches anything.
type LogFilter struct {
	FromBlock int64
	ToBlock   int64
	Addresses []string
	Topics    [][]string
}

func (f LogFilter) params() map[string]any {
	p := map[string]any{
		"fromBlock": types.HexFromUint(uint64(f.FromBlock)),
		"toBlock":   types.HexFromUint(uint64(f.ToBlock)),
	}

	if len(f.Addresses) > 0 {
		p["address"] = f.Addresses
	}

	if len(f.Topics) > 0 {
		topics := make([]any, len(f.Topics))
		for i, position := range f.Topics {
			if len(position) > 0 {
				topics[i] = position
			}
		}
		p["topics"] = topics
	}

	return p
}

// GetLogs returns the matching logs sorted by block number then log index.
// Logs dropped by a reorg are left out.
func (c *client) GetLogs(ctx context.Context, filter LogFilter) ([]Log, error) {
	if filter.FromBlock > filter.ToBlock {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidRange, filter.FromBlock, filter.ToBlock)
	}

	var res []logResponse
	if err := c.fetch(ctx, &res, "eth_getLogs", filter.params()); err != nil {
		return nil, err
	}

	logs := make([]Log, 0, len(res))
	for _, l := range res {
		if l.Removed {
			continue
		}
		logs = append(logs, l.toLog())
	}

	slices.SortStableFunc(logs, func(a, b Log) int {
		if c := cmp.Compare(a.BlockNumber, b.BlockNumber); c != 0 {
			return c
		}
		return cmp.Compare(a.LogIndex, b.LogIndex)
	})

	return logs, nil
}
