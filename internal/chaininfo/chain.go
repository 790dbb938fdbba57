package chaininfo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Network describes the chain the service is pointed at.
type Network struct {
	Name         string
	ChainID      int64
	NativeSymbol string
	ExplorerURL  string
}

// XLayer is the default network.
var XLayer = Network{
	Name:         "X Layer",
	ChainID:      196,
	NativeSymbol: "OKB",
	ExplorerURL:  "https://www.xlayer.tech",
}

// WalletInfo is a point-in-time view of an account.
type WalletInfo struct {
	Address    string          `json:"address"`
	Balance    decimal.Decimal `json:"balance"`
	Symbol     string          `json:"symbol"`
	ChainID    int64           `json:"chainId"`
	IsContract bool            `json:"isContract"`
	CodeLength int             `json:"codeLength"`
	CheckedAt  time.Time       `json:"checkedAt"`
}

// TokenBalance is the ERC-20 balance of a wallet.
type TokenBalance struct {
	Token    string          `json:"token"`
	Wallet   string          `json:"wallet"`
	Balance  decimal.Decimal `json:"balance"`
	Raw      string          `json:"raw"`
	Decimals uint8           `json:"decimals"`
}

// ChainStats summarizes the head of the chain.
type ChainStats struct {
	Network      string          `json:"network"`
	ChainID      int64           `json:"chainId"`
	BlockNumber  uint64          `json:"blockNumber"`
	GasPriceGwei decimal.Decimal `json:"gasPriceGwei"`
	ExplorerURL  string          `json:"explorerUrl"`
}

// Factory kinds reported in DexFactoryInfo.DetectedType.
const (
	FactoryKindUniswapV2 = "UniswapV2FactoryLike"
	FactoryKindGeneric   = "FactoryLike"
)

// DexFactoryInfo describes a DEX factory contract and its newest pairs.
// PairsLength is nil when the contract does not expose allPairsLength.
type DexFactoryInfo struct {
	Address      string   `json:"address"`
	Network      string   `json:"network"`
	ChainID      int64    `json:"chainId"`
	ExplorerURL  string   `json:"explorerUrl"`
	DetectedType string   `json:"detectedType"`
	CodeLength   int      `json:"codeLength"`
	PairsLength  *uint64  `json:"pairsLength"`
	RecentPairs  []string `json:"recentPairs"`
}

// Blockchain is the read-only node access the service needs.
type Blockchain interface {
	// GetBalance returns the native balance of address in whole units.
	GetBalance(ctx context.Context, address string) (decimal.Decimal, error)

	// GetCode returns the bytecode deployed at address, empty for plain accounts.
	GetCode(ctx context.Context, address string) ([]byte, error)

	// GetChainStats returns chain id, head block and gas price. Network and
	// ExplorerURL are left for the caller to fill.
	GetChainStats(ctx context.Context) (ChainStats, error)

	// GetTokenBalance returns the balance of wallet on the token contract, or
	// ErrNotAToken when the contract does not answer ERC-20 calls.
	GetTokenBalance(ctx context.Context, token, wallet string) (TokenBalance, error)

	// GetDexFactoryInfo inspects factory through the UniswapV2 factory
	// interface and lists up to maxPairs pairs, newest first. Only
	// Address, DetectedType, PairsLength and RecentPairs are filled.
	GetDexFactoryInfo(ctx context.Context, factory string, maxPairs int) (DexFactoryInfo, error)
}
