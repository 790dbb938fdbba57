// Package telegram answers bot commands: one-off wallet, token and chain
// lookups plus management of wallet monitoring for the calling chat.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabapcia/walletbot/internal/chaininfo"
	"github.com/gabapcia/walletbot/internal/pkg/errtrack"
	"github.com/gabapcia/walletbot/internal/pkg/logger"
	"github.com/gabapcia/walletbot/internal/pkg/x/chflow"
	"github.com/gabapcia/walletbot/internal/walletwatch"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const defaultUpdateTimeout = 60

// Bot is the subset of *tgbotapi.BotAPI the handler needs.
type Bot interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type handler struct {
	bot           Bot
	chainInfo     chaininfo.Service
	walletWatch   walletwatch.Service
	updateTimeout int
}

// Run long-polls updates and answers each command until ctx is done or the
// update channel closes.
func (h *handler) Run(ctx context.Context) error {
	updates := h.bot.GetUpdatesChan(tgbotapi.UpdateConfig{Offset: 0, Timeout: h.updateTimeout})
	defer h.bot.StopReceivingUpdates()

	logger.Info(ctx, "telegram bot listening for updates")

	for {
		update, ok := chflow.Receive(ctx, (<-chan tgbotapi.Update)(updates))
		if !ok {
			return nil
		}

		h.handleUpdate(ctx, update)
	}
}

func (h *handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return
	}

	ctx = logger.Derive(ctx,
		"telegram.chat_id", msg.Chat.ID,
		"telegram.command", msg.Command(),
	)

	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "panic while handling telegram command", "panic", r)
			errtrack.CapturePanic(ctx, r, map[string]string{"component": "telegram"})
		}
	}()

	text := h.dispatch(ctx, msg.Chat.ID, msg.Command(), strings.Fields(msg.CommandArguments()))
	if text == "" {
		return
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ParseMode = tgbotapi.ModeMarkdown
	reply.ReplyToMessageID = msg.MessageID
	reply.DisableWebPagePreview = true

	if _, err := h.bot.Send(reply); err != nil {
		logger.Error(ctx, "error sending telegram reply", "error", err)
	}
}

// dispatch runs command and returns the reply text. An empty reply means
// nothing should be sent.
func (h *handler) dispatch(ctx context.Context, chatID int64, command string, args []string) string {
	switch command {
	case "start", "help":
		return helpText
	case "wallet":
		if len(args) < 1 {
			return usage("/wallet <address>")
		}
		return h.wallet(ctx, args[0])
	case "chain":
		return h.chain(ctx)
	case "token":
		if len(args) < 2 {
			return usage("/token <token address> <wallet address>")
		}
		return h.token(ctx, args[0], args[1])
	case "monitor":
		if len(args) < 1 {
			return usage("/monitor <address>")
		}
		return h.monitor(ctx, chatID, args[0])
	case "monitorlist":
		return h.monitorList(chatID)
	case "monitoroff":
		if len(args) < 1 {
			return usage("/monitoroff <address>")
		}
		return h.monitorOff(ctx, chatID, args[0])
	default:
		return "🤔 Unknown command. Send /help to see what I can do."
	}
}

func (h *handler) wallet(ctx context.Context, address string) string {
	info, err := h.chainInfo.WalletInfo(ctx, address)
	if err != nil {
		return h.errorReply(ctx, err)
	}
	return formatWalletInfo(info)
}

func (h *handler) chain(ctx context.Context) string {
	stats, err := h.chainInfo.ChainStats(ctx)
	if err != nil {
		return h.errorReply(ctx, err)
	}
	return formatChainStats(stats)
}

func (h *handler) token(ctx context.Context, token, wallet string) string {
	balance, err := h.chainInfo.TokenBalance(ctx, token, wallet)
	if err != nil {
		return h.errorReply(ctx, err)
	}
	return formatTokenBalance(balance)
}

// monitor subscribes the chat. The watch service sends the confirmation
// message itself, so success produces no reply here.
func (h *handler) monitor(ctx context.Context, chatID int64, address string) string {
	if _, err := h.walletWatch.Subscribe(ctx, address, channelOf(chatID), walletwatch.NotificationKindBuy); err != nil {
		return h.errorReply(ctx, err)
	}
	return ""
}

func (h *handler) monitorList(chatID int64) string {
	var owned []walletwatch.WatchEntry
	for _, entry := range h.walletWatch.List() {
		if entry.SubscriberChannel == channelOf(chatID) {
			owned = append(owned, entry)
		}
	}
	return formatWatchList(owned)
}

// monitorOff only removes subscriptions owned by the calling chat.
func (h *handler) monitorOff(ctx context.Context, chatID int64, address string) string {
	address = strings.ToLower(address)

	owned := false
	for _, entry := range h.walletWatch.List() {
		if entry.Address == address && entry.SubscriberChannel == channelOf(chatID) {
			owned = true
			break
		}
	}
	if !owned {
		return h.errorReply(ctx, walletwatch.ErrNotWatched)
	}

	if err := h.walletWatch.Unsubscribe(ctx, address); err != nil {
		return h.errorReply(ctx, err)
	}
	return fmt.Sprintf("🛑 Stopped monitoring `%s`.", address)
}

// errorReply maps err to a user-facing message. Unexpected errors are logged
// and reported.
func (h *handler) errorReply(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, chaininfo.ErrInvalidAddress), errors.Is(err, walletwatch.ErrInvalidAddress):
		return "❌ Invalid address. Expected `0x` followed by 40 hex characters."
	case errors.Is(err, chaininfo.ErrNotAToken):
		return "❌ That contract does not look like an ERC-20 token."
	case errors.Is(err, walletwatch.ErrNotWatched):
		return "ℹ️ This chat is not monitoring that wallet. Send /monitorlist to see your wallets."
	case errors.Is(err, walletwatch.ErrServiceClosed):
		return "⏳ Monitoring is shutting down. Please try again later."
	}

	logger.Error(ctx, "error handling telegram command", "error", err)
	errtrack.CaptureError(ctx, err, map[string]string{"component": "telegram"})
	return "⚠️ Something went wrong while talking to the chain. Please try again later."
}

func channelOf(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

type config struct {
	updateTimeout int
}

type Option func(*config)

func NewHandler(bot Bot, chainInfo chaininfo.Service, walletWatch walletwatch.Service, opts ...Option) *handler {
	cfg := config{
		updateTimeout: defaultUpdateTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &handler{
		bot:           bot,
		chainInfo:     chainInfo,
		walletWatch:   walletWatch,
		updateTimeout: cfg.updateTimeout,
	}
}

// WithUpdateTimeout sets the long-poll timeout in seconds. Default: 60.
func WithUpdateTimeout(seconds int) Option {
	return func(c *config) {
		c.updateTimeout = seconds
	}
}
