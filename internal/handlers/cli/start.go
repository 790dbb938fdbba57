package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/walletbot/internal/pkg/logger"
	"github.com/gabapcia/walletbot/internal/walletwatch"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// Runner is a long-running loop stopped by cancelling ctx.
type Runner interface {
	Run(ctx context.Context) error
}

// Server serves on addr until ctx is done.
type Server interface {
	ListenAndServe(ctx context.Context, addr string) error
}

// Runtime is what the start command drives. Bot and API are optional.
type Runtime struct {
	WalletWatch walletwatch.Service
	Bot         Runner
	API         Server
	HTTPAddr    string

	// Close releases whatever the factory opened. May be nil.
	Close func()
}

type RuntimeFactory func(ctx context.Context) (Runtime, error)

// startCommand runs the watch loop, the Telegram bot and the HTTP API until
// SIGINT or SIGTERM.
//
//	walletbot start
func startCommand(newRuntime RuntimeFactory) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the watch loop, the Telegram bot and the HTTP API.",
		Usage:       "Runs every service until Ctrl+C or a termination signal.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := newRuntime(ctx)
			if err != nil {
				return err
			}
			if rt.Close != nil {
				defer rt.Close()
			}

			return serve(ctx, rt)
		},
	}
}

// serve blocks until ctx is done or one component fails, which stops the
// others.
func serve(ctx context.Context, rt Runtime) error {
	if err := rt.WalletWatch.Start(ctx); err != nil {
		return err
	}
	defer rt.WalletWatch.Close()

	g, gctx := errgroup.WithContext(ctx)

	if rt.Bot != nil {
		g.Go(func() error {
			return rt.Bot.Run(gctx)
		})
	}

	if rt.API != nil {
		g.Go(func() error {
			return rt.API.ListenAndServe(gctx, rt.HTTPAddr)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	err := g.Wait()
	logger.Info(ctx, "walletbot shutting down", "error", err)
	return err
}
