package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Domain errors
var (
	ErrInvalidAmount          = errors.New("invalid amount: must not be negative")
	ErrNoAccountForWithdrawal = errors.New("account has no balance, withdrawal is not allowed")
	ErrInsufficientFunds      = errors.New("insufficient balance for withdrawal")
	ErrInvalidAccountID       = errors.New("account ID is required")
	ErrInvalidKind            = errors.New("transaction type must be deposit or withdrawal")
)

// Kind is the closed set of transaction types.
type Kind int

const (
	Deposit Kind = iota + 1
	Withdrawal
	Interest
)

var kindCodes = map[Kind]string{
	Deposit:    "D",
	Withdrawal: "W",
	Interest:   "I",
}

// Code returns the single-letter code shown on statements.
func (k Kind) Code() string {
	return kindCodes[k]
}

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Interest:
		return "interest"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts a code (D, W, I) or a full name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "D", "DEPOSIT":
		return Deposit, nil
	case "W", "WITHDRAWAL":
		return Withdrawal, nil
	case "I", "INTEREST":
		return Interest, nil
	}
	return 0, fmt.Errorf("unknown transaction type %q", s)
}

// Transaction is an accepted ledger entry. Amount is always a magnitude; the
// direction comes from Kind. Balance is the account balance right after it.
type Transaction struct {
	ID        string
	AccountID string
	Date      time.Time
	Kind      Kind
	Amount    decimal.Decimal
	Balance   decimal.Decimal
}

// Signed returns the amount with the direction applied.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Account owns the balance and ordered history of one account.
type Account struct {
	ID           string
	Balance      decimal.Decimal
	Transactions []Transaction
}

// countOn returns how many transactions the account already has on day.
func (a *Account) countOn(day time.Time) int {
	n := 0
	for _, txn := range a.Transactions {
		if txn.Date.Equal(day) {
			n++
		}
	}
	return n
}
