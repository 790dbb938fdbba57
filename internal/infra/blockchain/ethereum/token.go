package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/walletbot/internal/chaininfo"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

// ERC-20 function selectors.
var (
	balanceOfSelector = []byte{0x70, 0xa0, 0x82, 0x31}
	decimalsSelector  = []byte{0x31, 0x3c, 0xe5, 0x67}
)

type callMsg struct {
	To   string `json:"to"`
	Data string `json:"data"`
}

// call runs a read-only contract call and returns its output. An empty output
// means the target has no such function, which for these selectors means it is
// not an ERC-20 token.
func (c *client) call(ctx context.Context, to string, data []byte) ([]byte, error) {
	out, err := c.fetchData(ctx, "eth_call", callMsg{To: to, Data: hexutil.Encode(data)}, latestBlock)
	if err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return nil, chaininfo.ErrNotAToken
	}

	return out, nil
}

// GetTokenBalance returns the ERC-20 balance of wallet on the token contract,
// scaled by the token's decimals.
func (c *client) GetTokenBalance(ctx context.Context, token, wallet string) (chaininfo.TokenBalance, error) {
	data := append(append([]byte{}, balanceOfSelector...), common.LeftPadBytes(common.HexToAddress(wallet).Bytes(), 32)...)

	out, err := c.call(ctx, token, data)
	if err != nil {
		return chaininfo.TokenBalance{}, fmt.Errorf("balanceOf: %w", err)
	}
	raw := new(big.Int).SetBytes(out)

	out, err = c.call(ctx, token, decimalsSelector)
	if err != nil {
		return chaininfo.TokenBalance{}, fmt.Errorf("decimals: %w", err)
	}

	decimals := new(big.Int).SetBytes(out)
	if !decimals.IsUint64() || decimals.Uint64() > 255 {
		return chaininfo.TokenBalance{}, fmt.Errorf("decimals: value %s out of range", decimals)
	}

	return chaininfo.TokenBalance{
		Token:    token,
		Wallet:   wallet,
		Balance:  decimal.NewFromBigInt(raw, -int32(decimals.Uint64())),
		Raw:      raw.String(),
		Decimals: uint8(decimals.Uint64()),
	}, nil
}
