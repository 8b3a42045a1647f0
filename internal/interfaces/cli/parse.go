package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gicbank/internal/domain/interest"
	"gicbank/internal/domain/ledger"
	"gicbank/internal/shared/calendar"
)

// ErrMalformedInput is returned when a line cannot be turned into a command.
// Malformed lines never reach the bank service.
var ErrMalformedInput = errors.New("malformed input")

type TransactionInput struct {
	Date      time.Time
	AccountID string
	Kind      ledger.Kind
	Amount    decimal.Decimal
}

type RuleInput struct {
	Date   time.Time
	RuleID string
	Rate   decimal.Decimal
}

type StatementInput struct {
	AccountID string
	Period    interest.Period
}

// fields upper-cases the line and splits it on whitespace. Extra trailing
// fields are ignored.
func fields(line string) []string {
	return strings.Fields(strings.ToUpper(line))
}

// ParseTransaction parses "<yyyyMMdd> <Account> <D|W> <Amount>".
func ParseTransaction(line string) (TransactionInput, error) {
	f := fields(line)
	if len(f) < 4 {
		return TransactionInput{}, fmt.Errorf("%w: expected <Date> <Account> <Type> <Amount>", ErrMalformedInput)
	}

	date, err := calendar.ParseDay(f[0])
	if err != nil {
		return TransactionInput{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	kind, err := ledger.ParseKind(f[2])
	if err != nil {
		return TransactionInput{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	amount, err := decimal.NewFromString(f[3])
	if err != nil {
		return TransactionInput{}, fmt.Errorf("%w: invalid amount %q", ErrMalformedInput, f[3])
	}

	return TransactionInput{Date: date, AccountID: f[1], Kind: kind, Amount: amount}, nil
}

// ParseRule parses "<yyyyMMdd> <RuleId> <Rate in %>".
func ParseRule(line string) (RuleInput, error) {
	f := fields(line)
	if len(f) < 3 {
		return RuleInput{}, fmt.Errorf("%w: expected <Date> <RuleId> <Rate in %%>", ErrMalformedInput)
	}

	date, err := calendar.ParseDay(f[0])
	if err != nil {
		return RuleInput{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	rate, err := decimal.NewFromString(f[2])
	if err != nil {
		return RuleInput{}, fmt.Errorf("%w: invalid rate %q", ErrMalformedInput, f[2])
	}

	return RuleInput{Date: date, RuleID: f[1], Rate: rate}, nil
}

// ParseStatement parses "<Account> <yyyyMM>".
func ParseStatement(line string) (StatementInput, error) {
	f := fields(line)
	if len(f) < 2 {
		return StatementInput{}, fmt.Errorf("%w: expected <Account> <Year><Month>", ErrMalformedInput)
	}

	period, err := interest.ParsePeriod(f[1])
	if err != nil {
		return StatementInput{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return StatementInput{AccountID: f[0], Period: period}, nil
}
