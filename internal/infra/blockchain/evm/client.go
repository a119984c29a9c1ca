// Package evm reads chain data from EVM JSON-RPC providers: the chain head, gas
// prices and contract logs. Channel tasks consume it through their own narrow
// interfaces.
package evm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/transport/jsonrpc"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/types"
)

// maxFeeHistoryBlocks is the largest block count providers accept for eth_feeHistory.
const maxFeeHistoryBlocks = 1024

// ErrInvalidRange is returned for ranges whose start is after their end.
var ErrInvalidRange = errors.New("invalid block range")

type client struct {
	conn jsonrpc.Client
}

// NewClient returns an EVM reader over conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

func (c *client) fetch(ctx context.Context, out any, method string, params ...any) error {
	data, err := c.conn.Fetch(ctx, method, params...)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s result: %w", method, err)
	}
	return nil
}

// BlockNumber returns the current chain head.
func (c *client) BlockNumber(ctx context.Context) (int64, error) {
	var head types.Hex
	if err := c.fetch(ctx, &head, "eth_blockNumber"); err != nil {
		return 0, err
	}
	return head.Int64(), nil
}

// GasPrice returns the provider's current gas price in wei.
func (c *client) GasPrice(ctx context.Context) (*big.Int, error) {
	var price types.Hex
	if err := c.fetch(ctx, &price, "eth_gasPrice"); err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(price.Uint64()), nil
}

type feeHistoryResponse struct {
	OldestBlock   types.Hex   `json:"oldestBlock"`
	BaseFeePerGas []types.Hex `json:"baseFeePerGas"`
	GasUsedRatio  []float64   `json:"gasUsedRatio"`
}

// AverageBaseFee returns the mean base fee in wei over the blocks of [from, to].
// Ranges longer than the provider limit are averaged over their last blocks.
func (c *client) AverageBaseFee(ctx context.Context, from, to int64) (*big.Int, error) {
	if from > to {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidRange, from, to)
	}

	count := min(to-from+1, maxFeeHistoryBlocks)

	var res feeHistoryResponse
	err := c.fetch(ctx, &res, "eth_feeHistory", types.HexFromUint(uint64(count)), types.HexFromUint(uint64(to)), []int{})
	if err != nil {
		return nil, err
	}

	// baseFeePerGas carries one extra entry for the block after the range.
	fees := res.BaseFeePerGas
	if len(fees) > int(count) {
		fees = fees[:count]
	}
	if len(fees) == 0 {
		return big.NewInt(0), nil
	}

	sum := new(big.Int)
	for _, fee := range fees {
		sum.Add(sum, new(big.Int).SetUint64(fee.Uint64()))
	}
	return sum.Div(sum, big.NewInt(int64(len(fees)))), nil
}
