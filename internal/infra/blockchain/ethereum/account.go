package ethereum

import (
	"context"

	"github.com/shopspring/decimal"
)

// weiExponent converts wei into ether.
const weiExponent = -18

// GetBalance returns the native balance of address at the latest block, in
// ether.
func (c *client) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	wei, err := c.fetchQuantity(ctx, "eth_getBalance", address, latestBlock)
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromBigInt(wei, weiExponent), nil
}

// GetCode returns the deployed bytecode of address. Externally owned accounts
// have no code and return an empty slice.
func (c *client) GetCode(ctx context.Context, address string) ([]byte, error) {
	code, err := c.fetchData(ctx, "eth_getCode", address, latestBlock)
	if err != nil {
		return nil, err
	}

	if code == nil {
		code = []byte{}
	}

	return code, nil
}

// HasCode reports whether a contract is deployed at address.
func (c *client) HasCode(ctx context.Context, address string) (bool, error) {
	code, err := c.GetCode(ctx, address)
	if err != nil {
		return false, err
	}

	return len(code) > 0, nil
}
