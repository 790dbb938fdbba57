// Package ethereum reads account and chain state from EVM-compatible nodes
// over JSON-RPC. The same client backs the wallet watch loop and the
// read-only chain info queries.
package ethereum

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/gabapcia/walletbot/internal/chaininfo"
	"github.com/gabapcia/walletbot/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletbot/internal/walletwatch"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const latestBlock = "latest"

// client talks to an EVM node through a JSON-RPC connection.
type client struct {
	conn jsonrpc.Client
}

var (
	_ walletwatch.ChainReader = (*client)(nil)
	_ chaininfo.Blockchain    = (*client)(nil)
)

// NewClient returns a client that issues every call through conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// fetchQuantity calls method and decodes its result as a hex quantity.
func (c *client) fetchQuantity(ctx context.Context, method string, params ...any) (*big.Int, error) {
	raw, err := c.conn.Fetch(ctx, method, params...)
	if err != nil {
		return nil, err
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	v, err := hexutil.DecodeBig(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return v, nil
}

// fetchData calls method and decodes its result as hex encoded bytes.
func (c *client) fetchData(ctx context.Context, method string, params ...any) ([]byte, error) {
	raw, err := c.conn.Fetch(ctx, method, params...)
	if err != nil {
		return nil, err
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	if s == "" {
		return nil, nil
	}

	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return b, nil
}
