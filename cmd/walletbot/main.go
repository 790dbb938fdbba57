package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/walletbot/internal/chaininfo"
	"github.com/gabapcia/walletbot/internal/config"
	"github.com/gabapcia/walletbot/internal/handlers/cli"
	httphandler "github.com/gabapcia/walletbot/internal/handlers/http"
	telegramhandler "github.com/gabapcia/walletbot/internal/handlers/telegram"
	"github.com/gabapcia/walletbot/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/walletbot/internal/infra/messaging/telegram"
	"github.com/gabapcia/walletbot/internal/infra/storage/redis"
	"github.com/gabapcia/walletbot/internal/pkg/errtrack"
	"github.com/gabapcia/walletbot/internal/pkg/logger"
	"github.com/gabapcia/walletbot/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletbot/internal/pkg/telemetry"
	"github.com/gabapcia/walletbot/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletbot/internal/walletwatch"
)

const flushTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, initErr := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if initErr != nil {
			return fmt.Errorf("init telemetry: %w", initErr)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
			defer cancel()
			err = errors.Join(err, shutdown(shutdownCtx))
		}()
	}

	if err := logger.Init(cfg.Log.Level); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := errtrack.Init(errtrack.Config{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     cfg.Sentry.Release,
	}); err != nil {
		return fmt.Errorf("init error tracking: %w", err)
	}
	defer errtrack.Flush(flushTimeout)

	rpc := jsonrpc.NewClient(cfg.RPC.URL,
		jsonrpc.WithTimeout(cfg.RPC.Timeout),
		jsonrpc.WithRetryMax(cfg.RPC.RetryMax),
		jsonrpc.WithRateLimit(cfg.RPC.RateLimit, cfg.RPC.RateBurst),
		jsonrpc.WithCircuitBreaker(cfg.RPC.BreakerFailures, cfg.RPC.BreakerTimeout),
	)
	chain := ethereum.NewClient(rpc)

	chainInfo := chaininfo.New(chain, chaininfo.WithNetwork(chaininfo.Network{
		Name:         cfg.Network.Name,
		ChainID:      cfg.Network.ChainID,
		NativeSymbol: cfg.Network.NativeSymbol,
		ExplorerURL:  cfg.Network.ExplorerURL,
	}))

	return cli.Run(ctx, chainInfo, func(ctx context.Context) (cli.Runtime, error) {
		return newRuntime(ctx, cfg, chain, chainInfo)
	})
}

// newRuntime connects the long-running services used by the start command.
func newRuntime(ctx context.Context, cfg config.Config, chain walletwatch.ChainReader, chainInfo chaininfo.Service) (cli.Runtime, error) {
	if cfg.Telegram.Token == "" {
		return cli.Runtime{}, errors.New("TELEGRAM_TOKEN is required to start")
	}

	trustedProxies, err := cfg.HTTP.TrustedProxyPrefixes()
	if err != nil {
		return cli.Runtime{}, err
	}

	botOpts := []telegram.Option{
		telegram.WithTimeout(cfg.Telegram.Timeout),
		telegram.WithDebug(cfg.Telegram.Debug),
	}
	senderOpts := []telegram.Option{
		telegram.WithTimeout(cfg.Telegram.SendTimeout),
		telegram.WithRetryMax(0),
	}
	if cfg.Telegram.Endpoint != "" {
		botOpts = append(botOpts, telegram.WithEndpoint(cfg.Telegram.Endpoint))
		senderOpts = append(senderOpts, telegram.WithEndpoint(cfg.Telegram.Endpoint))
	}

	bot, err := telegram.NewBotAPI(cfg.Telegram.Token, botOpts...)
	if err != nil {
		return cli.Runtime{}, fmt.Errorf("connect telegram bot: %w", err)
	}
	logger.Info(ctx, "telegram bot authorized", "telegram.username", bot.Self.UserName)

	watchOpts := []walletwatch.Option{
		walletwatch.WithInterval(cfg.Watch.Interval),
		walletwatch.WithReadTimeout(cfg.Watch.ReadTimeout),
		walletwatch.WithDeliveryTimeout(cfg.Watch.NotifyTimeout),
		walletwatch.WithNativeSymbol(cfg.Network.NativeSymbol),
		walletwatch.WithRetry(retry.New(
			retry.WithAttempts(cfg.Watch.NotifyAttempts),
			retry.WithDelay(cfg.Watch.NotifyDelay),
		)),
		walletwatch.WithReadFailureHandler(func(ctx context.Context, entry walletwatch.WatchEntry, err error) {
			logger.Warn(ctx, "wallet read failed, keeping last snapshot", "wallet.address", entry.Address, "error", err)
		}),
		walletwatch.WithDeliveryFailureHandler(func(ctx context.Context, entry walletwatch.WatchEntry, err error) {
			logger.Error(ctx, "notification delivery failed", "wallet.address", entry.Address, "error", err)
			errtrack.CaptureError(ctx, err, map[string]string{"component": "walletwatch"})
		}),
	}

	closeRuntime := func() {}
	if cfg.Redis.Addr != "" {
		storage, err := redis.NewClient(ctx, cfg.Redis.Addr,
			redis.WithCredentials(cfg.Redis.Username, cfg.Redis.Password),
			redis.WithDB(cfg.Redis.DB),
			redis.WithKeyPrefix(cfg.Redis.KeyPrefix),
		)
		if err != nil {
			return cli.Runtime{}, fmt.Errorf("connect redis: %w", err)
		}

		watchOpts = append(watchOpts, walletwatch.WithStorage(storage))
		closeRuntime = func() {
			if err := storage.Close(); err != nil {
				logger.Warn(ctx, "failed to close redis", "error", err)
			}
		}
	}

	sender := telegram.NewSenderBotAPI(bot, senderOpts...)
	walletWatch := walletwatch.New(chain, telegram.NewClient(sender), watchOpts...)

	return cli.Runtime{
		WalletWatch: walletWatch,
		Bot: telegramhandler.NewHandler(bot, chainInfo, walletWatch,
			telegramhandler.WithUpdateTimeout(cfg.Telegram.UpdateTimeout),
		),
		API: httphandler.NewServer(chainInfo, walletWatch,
			httphandler.WithRateLimit(cfg.HTTP.RateLimit, cfg.HTTP.RateBurst),
			httphandler.WithTrustedProxies(trustedProxies...),
		),
		HTTPAddr: cfg.HTTP.Addr,
		Close:    closeRuntime,
	}, nil
}
