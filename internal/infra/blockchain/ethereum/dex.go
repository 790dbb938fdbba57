package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/walletbot/internal/chaininfo"
	"github.com/gabapcia/walletbot/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// UniswapV2 factory function selectors.
var (
	allPairsLengthSelector = []byte{0x57, 0x4f, 0x2b, 0xa3}
	allPairsSelector       = []byte{0x1e, 0x3d, 0xd1, 0x8b}
)

// tryCall is like call but reports (nil, nil) when the contract reverts or
// returns nothing, so optional interfaces can be detected.
func (c *client) tryCall(ctx context.Context, to string, data []byte) ([]byte, error) {
	out, err := c.fetchData(ctx, "eth_call", callMsg{To: to, Data: hexutil.Encode(data)}, latestBlock)
	if errors.Is(err, jsonrpc.ErrProviderReturnedError) {
		return nil, nil
	}
	return out, err
}

// GetDexFactoryInfo reads allPairsLength and then walks allPairs backwards
// from the newest index. A contract without allPairsLength is reported as a
// generic factory; a failing allPairs call ends the walk early.
func (c *client) GetDexFactoryInfo(ctx context.Context, factory string, maxPairs int) (chaininfo.DexFactoryInfo, error) {
	info := chaininfo.DexFactoryInfo{
		Address:      factory,
		DetectedType: chaininfo.FactoryKindGeneric,
		RecentPairs:  []string{},
	}

	out, err := c.tryCall(ctx, factory, allPairsLengthSelector)
	if err != nil {
		return chaininfo.DexFactoryInfo{}, fmt.Errorf("allPairsLength: %w", err)
	}
	if len(out) == 0 {
		return info, nil
	}

	length := new(big.Int).SetBytes(out)
	if !length.IsUint64() {
		return chaininfo.DexFactoryInfo{}, fmt.Errorf("allPairsLength: value %s out of range", length)
	}
	pairsLength := length.Uint64()

	info.DetectedType = chaininfo.FactoryKindUniswapV2
	info.PairsLength = &pairsLength

	toFetch := min(pairsLength, uint64(max(maxPairs, 0)))
	for i := range toFetch {
		index := new(big.Int).SetUint64(pairsLength - 1 - i)
		data := append(append([]byte{}, allPairsSelector...), common.LeftPadBytes(index.Bytes(), 32)...)

		out, err := c.tryCall(ctx, factory, data)
		if err != nil {
			return chaininfo.DexFactoryInfo{}, fmt.Errorf("allPairs(%s): %w", index, err)
		}
		if len(out) == 0 {
			break
		}

		info.RecentPairs = append(info.RecentPairs, common.BytesToAddress(out).Hex())
	}

	return info, nil
}
