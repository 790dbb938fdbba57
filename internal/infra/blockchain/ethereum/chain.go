package ethereum

import (
	"context"

	"github.com/gabapcia/walletbot/internal/chaininfo"

	"github.com/shopspring/decimal"
)

const gweiExponent = -9

// GetChainStats reads the chain id, the head block number and the current gas
// price.
func (c *client) GetChainStats(ctx context.Context) (chaininfo.ChainStats, error) {
	chainID, err := c.fetchQuantity(ctx, "eth_chainId")
	if err != nil {
		return chaininfo.ChainStats{}, err
	}

	blockNumber, err := c.fetchQuantity(ctx, "eth_blockNumber")
	if err != nil {
		return chaininfo.ChainStats{}, err
	}

	gasPrice, err := c.fetchQuantity(ctx, "eth_gasPrice")
	if err != nil {
		return chaininfo.ChainStats{}, err
	}

	return chaininfo.ChainStats{
		ChainID:      chainID.Int64(),
		BlockNumber:  blockNumber.Uint64(),
		GasPriceGwei: decimal.NewFromBigInt(gasPrice, gweiExponent),
	}, nil
}
