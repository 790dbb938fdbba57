package telegram

import (
	"fmt"
	"strings"

	"github.com/gabapcia/walletbot/internal/chaininfo"
	"github.com/gabapcia/walletbot/internal/walletwatch"
)

const helpText = `🤖 *Wallet Bot*

*Lookups*
/wallet <address> - native balance and contract status
/token <token> <wallet> - ERC-20 balance
/chain - chain id, latest block and gas price

*Monitoring*
/monitor <address> - notify this chat when the wallet changes
/monitorlist - wallets monitored by this chat
/monitoroff <address> - stop monitoring a wallet

/help - show this message`

const dateLayout = "2006-01-02 15:04 MST"

func usage(syntax string) string {
	return fmt.Sprintf("Usage: %s", syntax)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatWalletInfo(info chaininfo.WalletInfo) string {
	var b strings.Builder
	b.WriteString("💼 *Wallet Info*\n\n")
	fmt.Fprintf(&b, "📍 *Address*: `%s`\n", info.Address)
	fmt.Fprintf(&b, "💰 *Balance*: %s %s\n", info.Balance.String(), info.Symbol)
	fmt.Fprintf(&b, "📜 *Contract*: %s", yesNo(info.IsContract))
	if info.IsContract {
		fmt.Fprintf(&b, " (%d bytes)", info.CodeLength)
	}
	fmt.Fprintf(&b, "\n🔗 *Chain ID*: %d\n", info.ChainID)
	fmt.Fprintf(&b, "⏰ *Checked*: %s", info.CheckedAt.UTC().Format(dateLayout))
	return b.String()
}

func formatTokenBalance(balance chaininfo.TokenBalance) string {
	var b strings.Builder
	b.WriteString("🪙 *Token Balance*\n\n")
	fmt.Fprintf(&b, "📄 *Token*: `%s`\n", balance.Token)
	fmt.Fprintf(&b, "📍 *Wallet*: `%s`\n", balance.Wallet)
	fmt.Fprintf(&b, "💰 *Balance*: %s\n", balance.Balance.String())
	fmt.Fprintf(&b, "🔢 *Decimals*: %d", balance.Decimals)
	return b.String()
}

func formatChainStats(stats chaininfo.ChainStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⛓ *%s Status*\n\n", stats.Network)
	fmt.Fprintf(&b, "🔗 *Chain ID*: %d\n", stats.ChainID)
	fmt.Fprintf(&b, "📦 *Latest Block*: %d\n", stats.BlockNumber)
	fmt.Fprintf(&b, "⛽ *Gas Price*: %s Gwei", stats.GasPriceGwei.StringFixed(2))
	if stats.ExplorerURL != "" {
		fmt.Fprintf(&b, "\n🔍 *Explorer*: %s", stats.ExplorerURL)
	}
	return b.String()
}

func formatWatchList(entries []walletwatch.WatchEntry) string {
	if len(entries) == 0 {
		return "📭 This chat is not monitoring any wallet. Use /monitor <address> to start."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 *Monitored Wallets* (%d)\n", len(entries))
	for i, entry := range entries {
		fmt.Fprintf(&b, "\n%d. `%s`\n   since %s", i+1, entry.Address, entry.AddedAt.UTC().Format(dateLayout))
	}
	return b.String()
}
