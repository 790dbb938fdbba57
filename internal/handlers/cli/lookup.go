package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/gabapcia/walletbot/internal/chaininfo"

	"github.com/urfave/cli/v3"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// walletCommand prints balance and contract status of an address.
//
//	walletbot wallet --address 0xABC...
func walletCommand(chainInfo chaininfo.Service) *cli.Command {
	return &cli.Command{
		Name:  "wallet",
		Usage: "Prints the native balance and contract status of a wallet as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address (0x followed by 40 hex characters)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			info, err := chainInfo.WalletInfo(ctx, c.String("address"))
			if err != nil {
				return err
			}
			return printJSON(c.Root().Writer, info)
		},
	}
}

// tokenCommand prints the ERC-20 balance a wallet holds.
//
//	walletbot token --token 0xTOKEN... --wallet 0xABC...
func tokenCommand(chainInfo chaininfo.Service) *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Prints the ERC-20 token balance of a wallet as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "token",
				Usage:    "Token contract address",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "wallet",
				Usage:    "Wallet address",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			balance, err := chainInfo.TokenBalance(ctx, c.String("token"), c.String("wallet"))
			if err != nil {
				return err
			}
			return printJSON(c.Root().Writer, balance)
		},
	}
}

func chainCommand(chainInfo chaininfo.Service) *cli.Command {
	return &cli.Command{
		Name:  "chain",
		Usage: "Prints chain id, latest block and gas price as JSON.",
		Action: func(ctx context.Context, c *cli.Command) error {
			stats, err := chainInfo.ChainStats(ctx)
			if err != nil {
				return err
			}
			return printJSON(c.Root().Writer, stats)
		},
	}
}

// dexCommand identifies a DEX factory and lists its newest pairs.
//
//	walletbot dex --factory 0xFACTORY...
func dexCommand(chainInfo chaininfo.Service) *cli.Command {
	return &cli.Command{
		Name:  "dex",
		Usage: "Prints the detected type and newest pairs of a DEX factory contract as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "factory",
				Usage:    "Factory contract address",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			info, err := chainInfo.DexFactoryInfo(ctx, c.String("factory"))
			if err != nil {
				return err
			}
			return printJSON(c.Root().Writer, info)
		},
	}
}
