// Package chaininfo answers one-off questions about wallets, tokens and the
// chain itself. It backs the bot commands, the HTTP API and the CLI.
package chaininfo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/walletbot/internal/pkg/validator"
)

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrNotAToken      = errors.New("address is not an ERC-20 token")
	ErrNoContractCode = errors.New("no contract code at address")
)

// maxFactoryPairs caps the pairs listed by DexFactoryInfo.
const maxFactoryPairs = 10

// Service answers read-only lookups against the configured network.
type Service interface {
	WalletInfo(ctx context.Context, address string) (WalletInfo, error)
	TokenBalance(ctx context.Context, token, wallet string) (TokenBalance, error)
	ChainStats(ctx context.Context) (ChainStats, error)

	// DexFactoryInfo identifies the DEX factory deployed at address. It fails
	// with ErrNoContractCode when nothing is deployed there.
	DexFactoryInfo(ctx context.Context, address string) (DexFactoryInfo, error)
}

type service struct {
	blockchain Blockchain
	network    Network
	now        func() time.Time
}

var _ Service = (*service)(nil)

func normalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !validator.IsAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return strings.ToLower(address), nil
}

func (s *service) WalletInfo(ctx context.Context, address string) (WalletInfo, error) {
	address, err := normalizeAddress(address)
	if err != nil {
		return WalletInfo{}, err
	}

	balance, err := s.blockchain.GetBalance(ctx, address)
	if err != nil {
		return WalletInfo{}, err
	}

	code, err := s.blockchain.GetCode(ctx, address)
	if err != nil {
		return WalletInfo{}, err
	}

	return WalletInfo{
		Address:    address,
		Balance:    balance,
		Symbol:     s.network.NativeSymbol,
		ChainID:    s.network.ChainID,
		IsContract: len(code) > 0,
		CodeLength: len(code),
		CheckedAt:  s.now().UTC(),
	}, nil
}

func (s *service) TokenBalance(ctx context.Context, token, wallet string) (TokenBalance, error) {
	token, err := normalizeAddress(token)
	if err != nil {
		return TokenBalance{}, err
	}

	wallet, err = normalizeAddress(wallet)
	if err != nil {
		return TokenBalance{}, err
	}

	return s.blockchain.GetTokenBalance(ctx, token, wallet)
}

func (s *service) ChainStats(ctx context.Context) (ChainStats, error) {
	stats, err := s.blockchain.GetChainStats(ctx)
	if err != nil {
		return ChainStats{}, err
	}

	stats.Network = s.network.Name
	stats.ExplorerURL = s.network.ExplorerURL
	return stats, nil
}

func (s *service) DexFactoryInfo(ctx context.Context, address string) (DexFactoryInfo, error) {
	address, err := normalizeAddress(address)
	if err != nil {
		return DexFactoryInfo{}, err
	}

	code, err := s.blockchain.GetCode(ctx, address)
	if err != nil {
		return DexFactoryInfo{}, err
	}
	if len(code) == 0 {
		return DexFactoryInfo{}, fmt.Errorf("%w: %s", ErrNoContractCode, address)
	}

	info, err := s.blockchain.GetDexFactoryInfo(ctx, address, maxFactoryPairs)
	if err != nil {
		return DexFactoryInfo{}, err
	}

	info.Address = address
	info.Network = s.network.Name
	info.ChainID = s.network.ChainID
	info.CodeLength = len(code)
	if s.network.ExplorerURL != "" {
		info.ExplorerURL = strings.TrimRight(s.network.ExplorerURL, "/") + "/address/" + address
	}
	if info.RecentPairs == nil {
		info.RecentPairs = []string{}
	}
	return info, nil
}

type config struct {
	network Network
	now     func() time.Time
}

type Option func(*config)

// New returns a Service reading from blockchain. Without options it reports
// the X Layer network.
func New(blockchain Blockchain, opts ...Option) *service {
	cfg := config{
		network: XLayer,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		blockchain: blockchain,
		network:    cfg.network,
		now:        cfg.now,
	}
}

// WithNetwork sets the network reported in results. Default: XLayer.
func WithNetwork(n Network) Option {
	return func(c *config) {
		c.network = n
	}
}

// WithClock replaces time.Now for the CheckedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
