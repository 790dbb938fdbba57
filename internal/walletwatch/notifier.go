package walletwatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/walletbot/internal/pkg/resilience/retry"
)

const (
	deltaPrecision = 6
	timeLayout     = "2006-01-02 15:04:05 MST"
)

// notifier turns snapshot changes into chat messages and delivers them.
type notifier struct {
	sender  MessageSender
	retry   retry.Retry
	symbol  string
	timeout time.Duration
}

// formatChange describes the move from prev to cur for address. Output uses
// Telegram's legacy Markdown.
func (n *notifier) formatChange(address string, prev, cur Snapshot, detectedAt time.Time) string {
	var changes []string

	if !prev.Balance.Equal(cur.Balance) {
		delta := cur.Balance.Sub(prev.Balance)
		direction := "increased"
		if delta.IsNegative() {
			direction = "decreased"
		}
		changes = append(changes, fmt.Sprintf("💰 %s balance %s: %s %s", n.symbol, direction, delta.Abs().StringFixed(deltaPrecision), n.symbol))
	}

	if prev.HasContractCode != cur.HasContractCode {
		if cur.HasContractCode {
			changes = append(changes, "📜 Contract code detected")
		} else {
			changes = append(changes, "📜 Contract code removed")
		}
	}

	var b strings.Builder
	b.WriteString("🔔 *Wallet Monitoring Notification*\n\n")
	fmt.Fprintf(&b, "📍 *Monitored Address*: `%s`\n", address)
	fmt.Fprintf(&b, "⏰ *Detection Time*: %s\n\n", detectedAt.UTC().Format(timeLayout))
	b.WriteString("📊 *Change Details*:\n")
	b.WriteString(strings.Join(changes, "\n"))
	b.WriteString("\n\n💡 *Current Status*:\n")
	fmt.Fprintf(&b, "• %s Balance: %s %s\n", n.symbol, cur.Balance.String(), n.symbol)
	fmt.Fprintf(&b, "• Is Contract: %s\n\n", yesNo(cur.HasContractCode))
	fmt.Fprintf(&b, "🔍 *View Details*: Use /wallet %s command", address)
	return b.String()
}

// formatConfirmation acknowledges a new subscription.
func (n *notifier) formatConfirmation(entry WatchEntry) string {
	var b strings.Builder
	b.WriteString("✅ *Wallet Monitoring Enabled*\n\n")
	fmt.Fprintf(&b, "📍 *Address*: `%s`\n", entry.Address)
	fmt.Fprintf(&b, "🔔 *Notification Type*: %s\n", entry.NotificationKind)
	fmt.Fprintf(&b, "💰 *Current Balance*: %s %s\n", entry.LastSnapshot.Balance.String(), n.symbol)
	fmt.Fprintf(&b, "• Is Contract: %s\n\n", yesNo(entry.LastSnapshot.HasContractCode))
	b.WriteString("You will be notified when the balance or contract status changes.")
	return b.String()
}

// deliver sends text to channel, retrying transient failures until the
// delivery timeout runs out.
func (n *notifier) deliver(ctx context.Context, channel, text string) error {
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	err := n.retry.Execute(ctx, func() error {
		return n.sender.SendMessage(ctx, channel, text)
	})
	if err != nil {
		return fmt.Errorf("%w: send to %s: %w", ErrTransport, channel, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
