// Package ledger records deposits and withdrawals per account and keeps each
// account's balance equal to the running sum of its transactions.
package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gicbank/internal/shared/calendar"
)

// Ledger owns every account and its transactions.
// It is not safe for concurrent use; the bank service serialises access.
type Ledger struct {
	accounts map[string]*Account
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// RecordTransaction validates and applies a deposit or withdrawal. Nothing is
// mutated unless every check passes.
func (l *Ledger) RecordTransaction(accountID string, date time.Time, kind Kind, amount decimal.Decimal) (Transaction, error) {
	accountID = normalizeID(accountID)
	if accountID == "" {
		return Transaction{}, ErrInvalidAccountID
	}
	if kind != Deposit && kind != Withdrawal {
		return Transaction{}, ErrInvalidKind
	}
	if amount.IsNegative() {
		return Transaction{}, ErrInvalidAmount
	}

	acct, exists := l.accounts[accountID]
	if !exists && kind == Withdrawal {
		return Transaction{}, ErrNoAccountForWithdrawal
	}

	balance := decimal.Zero
	if exists {
		balance = acct.Balance
	}
	if kind == Withdrawal && amount.GreaterThan(balance) {
		return Transaction{}, ErrInsufficientFunds
	}

	day := calendar.Day(date)
	seq := 1
	if exists {
		seq = acct.countOn(day) + 1
	}

	txn := Transaction{
		ID:        transactionID(day, seq),
		AccountID: accountID,
		Date:      day,
		Kind:      kind,
		Amount:    amount,
	}
	txn.Balance = balance.Add(txn.Signed())

	if !exists {
		acct = &Account{ID: accountID}
		l.accounts[accountID] = acct
	}
	acct.Balance = txn.Balance
	acct.Transactions = append(acct.Transactions, txn)

	return txn, nil
}

// Balance returns the live balance, zero for unknown accounts.
func (l *Ledger) Balance(accountID string) decimal.Decimal {
	if acct, ok := l.accounts[normalizeID(accountID)]; ok {
		return acct.Balance
	}
	return decimal.Zero
}

// TransactionsFrom returns a copy of the full history in acceptance order.
func (l *Ledger) TransactionsFrom(accountID string) []Transaction {
	acct, ok := l.accounts[normalizeID(accountID)]
	if !ok {
		return nil
	}
	out := make([]Transaction, len(acct.Transactions))
	copy(out, acct.Transactions)
	return out
}

// TransactionsInMonth returns the account's transactions dated inside the
// given month, ordered by date. Same-day entries keep acceptance order.
func (l *Ledger) TransactionsInMonth(accountID string, year int, month time.Month) []Transaction {
	acct, ok := l.accounts[normalizeID(accountID)]
	if !ok {
		return nil
	}

	var out []Transaction
	for _, txn := range acct.Transactions {
		if txn.Date.Year() == year && txn.Date.Month() == month {
			out = append(out, txn)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Accounts returns all account IDs in lexical order.
func (l *Ledger) Accounts() []string {
	ids := make([]string, 0, len(l.accounts))
	for id := range l.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// normalizeID is applied by every entry point so reads and writes agree on
// the account key.
func normalizeID(accountID string) string {
	return strings.TrimSpace(accountID)
}

func transactionID(day time.Time, seq int) string {
	return fmt.Sprintf("%s-%02d", calendar.FormatDay(day), seq)
}
