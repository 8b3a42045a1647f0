// Package statement builds the monthly account statement: the month's
// transactions followed by a freshly accrued interest line.
package statement

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"gicbank/internal/domain/interest"
	"gicbank/internal/domain/ledger"
)

// ErrNoTransactions reports that the account has nothing recorded in the
// requested month. It is an expected outcome, not a validation failure.
var ErrNoTransactions = errors.New("no transactions found for the account and month")

// LedgerReader is the read side of the ledger a statement needs.
type LedgerReader interface {
	TransactionsInMonth(accountID string, year int, month time.Month) []ledger.Transaction
	TransactionsFrom(accountID string) []ledger.Transaction
	Balance(accountID string) decimal.Decimal
}

// Accruer produces the interest line for a period.
type Accruer interface {
	Accrue(period interest.Period, history []ledger.Transaction, liveBalance decimal.Decimal) ledger.Transaction
}

// Statement is a read-only monthly view. The last transaction is always the
// interest line, which is never stored in the ledger.
type Statement struct {
	AccountID    string
	Period       string
	Transactions []ledger.Transaction
}

// Interest returns the synthesized interest line.
func (s *Statement) Interest() ledger.Transaction {
	return s.Transactions[len(s.Transactions)-1]
}

// Generator assembles statements from the ledger and the accrual calculator.
type Generator struct {
	ledger  LedgerReader
	accruer Accruer
}

// NewGenerator creates a statement generator
func NewGenerator(l LedgerReader, a Accruer) *Generator {
	return &Generator{ledger: l, accruer: a}
}

// Generate returns the statement for accountID in period, or
// ErrNoTransactions when the month is empty for that account.
func (g *Generator) Generate(accountID string, period interest.Period) (*Statement, error) {
	txns := g.ledger.TransactionsInMonth(accountID, period.Year, period.Month)
	if len(txns) == 0 {
		return nil, ErrNoTransactions
	}
	accountID = txns[0].AccountID

	interestLine := g.accruer.Accrue(period, g.ledger.TransactionsFrom(accountID), g.ledger.Balance(accountID))
	interestLine.AccountID = accountID

	return &Statement{
		AccountID:    accountID,
		Period:       period.String(),
		Transactions: append(txns, interestLine),
	}, nil
}
