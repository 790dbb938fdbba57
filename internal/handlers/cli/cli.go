package cli

import (
	"context"
	"os"

	"github.com/gabapcia/walletbot/internal/chaininfo"

	"github.com/urfave/cli/v3"
)

func newApp(chainInfo chaininfo.Service, newRuntime RuntimeFactory) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "walletbot",
		Description:           "Wallet lookups and balance change notifications for an EVM chain, over HTTP and Telegram.",
		Usage:                 "walletbot [command] [flags]",
		Commands: []*cli.Command{
			startCommand(newRuntime),
			walletCommand(chainInfo),
			tokenCommand(chainInfo),
			chainCommand(chainInfo),
			dexCommand(chainInfo),
		},
	}
}

// Run executes the walletbot CLI with the process arguments.
//
// Commands:
//
//   - `start`: runs the HTTP API, the Telegram bot and the watch loop.
//   - `wallet`: prints a one-off wallet lookup.
//   - `token`: prints a one-off token balance lookup.
//   - `chain`: prints current chain statistics.
//   - `dex`: prints what a DEX factory contract exposes.
//
// newRuntime is only invoked by `start`, so lookups never need bot credentials.
func Run(ctx context.Context, chainInfo chaininfo.Service, newRuntime RuntimeFactory) error {
	return newApp(chainInfo, newRuntime).Run(ctx, os.Args)
}
