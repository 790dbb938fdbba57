// Package telegram delivers text messages through the Telegram Bot API.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/walletbot/internal/pkg/resilience/retry"
	httptransport "github.com/gabapcia/walletbot/internal/pkg/transport/http"
	"github.com/gabapcia/walletbot/internal/walletwatch"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrInvalidChatID = errors.New("invalid telegram chat id")

// Sender is the part of *tgbotapi.BotAPI used to deliver messages.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type client struct {
	bot       Sender
	parseMode string
}

var _ walletwatch.MessageSender = (*client)(nil)

// NewClient returns a client sending through bot with legacy Markdown
// formatting.
func NewClient(bot Sender) *client {
	return &client{
		bot:       bot,
		parseMode: tgbotapi.ModeMarkdown,
	}
}

// ParseChatID converts a subscriber channel into a Telegram chat id.
func ParseChatID(channelID string) (int64, error) {
	chatID, err := strconv.ParseInt(strings.TrimSpace(channelID), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChatID, channelID)
	}
	return chatID, nil
}

// SendMessage sends text to the chat identified by channelID. It returns once
// ctx is done even if the Bot API has not answered. Invalid chat ids and 4xx
// answers other than 429 are marked unrecoverable for the retry layer.
func (c *client) SendMessage(ctx context.Context, channelID, text string) error {
	chatID, err := ParseChatID(channelID)
	if err != nil {
		return retry.Unrecoverable(err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = c.parseMode
	msg.DisableWebPagePreview = true

	done := make(chan error, 1)
	go func() {
		_, err := c.bot.Send(msg)
		done <- err
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		err = fmt.Errorf("send message to chat %d: %w", chatID, err)
		if isRejected(err) {
			return retry.Unrecoverable(err)
		}
		return err
	}

	return nil
}

// isRejected reports whether the Bot API refused the request itself. Sending
// it again cannot succeed, except after a 429.
func isRejected(err error) bool {
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code >= 400 && apiErr.Code < 500 && apiErr.Code != 429
}

const (
	defaultTimeout     = 90 * time.Second
	defaultRetryMax    = 2
	defaultSendTimeout = 10 * time.Second
)

type config struct {
	endpoint string
	timeout  time.Duration
	retryMax int
	debug    bool
}

type Option func(*config)

// NewBotAPI authenticates token against the Bot API and returns the bot. The
// underlying HTTP client retries transient failures. The default timeout is
// longer than the 60s long-poll window used for updates.
func NewBotAPI(token string, opts ...Option) (*tgbotapi.BotAPI, error) {
	cfg := config{
		endpoint: tgbotapi.APIEndpoint,
		timeout:  defaultTimeout,
		retryMax: defaultRetryMax,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	httpClient := httptransport.NewStandardClient(
		httptransport.WithTimeout(cfg.timeout),
		httptransport.WithRetryMax(cfg.retryMax),
	)

	bot, err := tgbotapi.NewBotAPIWithClient(token, cfg.endpoint, httpClient)
	if err != nil {
		return nil, err
	}

	bot.Debug = cfg.debug
	return bot, nil
}

// NewSenderBotAPI derives a bot for outgoing messages from an authorized one.
// It shares the token and identity but talks to the API through its own
// client: a 10s timeout and no transport retries by default, so a slow
// request never outlives the caller's deadline and retries happen in one
// place only.
func NewSenderBotAPI(bot *tgbotapi.BotAPI, opts ...Option) *tgbotapi.BotAPI {
	cfg := config{
		endpoint: tgbotapi.APIEndpoint,
		timeout:  defaultSendTimeout,
		debug:    bot.Debug,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	sender := &tgbotapi.BotAPI{
		Token:  bot.Token,
		Debug:  cfg.debug,
		Buffer: bot.Buffer,
		Self:   bot.Self,
		Client: httptransport.NewStandardClient(
			httptransport.WithTimeout(cfg.timeout),
			httptransport.WithRetryMax(cfg.retryMax),
		),
	}
	sender.SetAPIEndpoint(cfg.endpoint)
	return sender
}

// WithEndpoint overrides the Bot API endpoint format, which receives the token
// and the method name.
func WithEndpoint(endpoint string) Option {
	return func(c *config) {
		c.endpoint = endpoint
	}
}

// WithTimeout bounds a single HTTP attempt against the Bot API.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryMax sets how many times the HTTP client retries a failed request.
// Zero disables transport retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithDebug makes the bot log every API request and response.
func WithDebug(debug bool) Option {
	return func(c *config) {
		c.debug = debug
	}
}
