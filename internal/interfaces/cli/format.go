package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gicbank/internal/domain/ledger"
	"gicbank/internal/domain/ratetable"
	"gicbank/internal/shared/calendar"
)

const (
	txnHeader = "| %-10s | %-11s | %-6s | %-10s | %-10s |\n"
	txnRow    = "| %-10s | %-11s | %-6s | %10s | %10s |\n"
	ruleRow   = "| %-10s | %-8s | %8s |\n"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders d with two decimals and thousands separators.
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + s
	}
	return sign + printer.Sprintf("%d", n) + "." + frac
}

// WriteTransactions prints an account's transactions as a fixed-width table.
// The interest line has no transaction id.
func WriteTransactions(w io.Writer, accountID string, txns []ledger.Transaction) {
	fmt.Fprintf(w, "Account: %s\n", accountID)
	fmt.Fprintf(w, txnHeader, "Date", "Txn Id", "Type", "Amount", "Balance")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, txn := range txns {
		fmt.Fprintf(w, txnRow,
			calendar.FormatDay(txn.Date),
			txn.ID,
			txn.Kind.Code(),
			FormatAmount(txn.Amount),
			FormatAmount(txn.Balance),
		)
	}
}

// WriteRules prints the rate table.
func WriteRules(w io.Writer, rules []ratetable.Rule) {
	fmt.Fprintln(w, "Interest rules:")
	fmt.Fprintf(w, ruleRow, "Date", "RuleId", "Rate (%)")
	for _, r := range rules {
		fmt.Fprintf(w, ruleRow, calendar.FormatDay(r.Date), r.ID, r.Rate.StringFixed(2))
	}
}
