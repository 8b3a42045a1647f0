// Package cli is the interactive text front end of the bank: a menu loop that
// parses typed lines into bank operations and prints the results as tables.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gicbank/internal/domain/ledger"
	"gicbank/internal/domain/ratetable"
	"gicbank/internal/domain/statement"
	"gicbank/internal/shared/messages"
)

// Bank is the subset of the bank service the console drives.
type Bank interface {
	AddTransaction(ctx context.Context, accountID string, date time.Time, kind ledger.Kind, amount decimal.Decimal) (ledger.Transaction, error)
	AddInterestRule(ctx context.Context, date time.Time, ruleID string, rate decimal.Decimal) (ratetable.Rule, error)
	PrintStatement(ctx context.Context, accountID string, year int, month time.Month) (*statement.Statement, error)
	InterestRules(ctx context.Context) []ratetable.Rule
	History(ctx context.Context, accountID string) []ledger.Transaction
}

// rejection texts shown for domain errors
var rejections = []struct {
	err  error
	text string
}{
	{ledger.ErrNoAccountForWithdrawal, "Account balance is zero hence withdrawal is not allowed for this account."},
	{ledger.ErrInsufficientFunds, "Insufficient balance for withdrawal."},
	{ledger.ErrInvalidAmount, "Invalid amount, it must not be negative."},
	{ledger.ErrInvalidKind, "Invalid transaction type, use D or W."},
	{ratetable.ErrInvalidRule, "Invalid interest rate."},
}

type Console struct {
	bank   Bank
	in     *bufio.Scanner
	out    io.Writer
	msgs   *messages.Messages
	logger *zap.Logger
}

// NewConsole creates a console reading commands from in and writing to out.
// A nil msgs uses the default texts.
func NewConsole(bank Bank, in io.Reader, out io.Writer, msgs *messages.Messages, logger *zap.Logger) *Console {
	if msgs == nil {
		msgs = messages.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		bank:   bank,
		in:     bufio.NewScanner(in),
		out:    out,
		msgs:   msgs,
		logger: logger.Named("console"),
	}
}

// Run shows the menu until the user quits, the input ends or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu()
		choice, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}

		switch strings.ToUpper(strings.TrimSpace(choice)) {
		case "T":
			c.inputTransactions(ctx)
		case "I":
			c.defineRules(ctx)
		case "P":
			c.printStatement(ctx)
		case "Q":
			fmt.Fprintln(c.out, c.msgs.Goodbye)
			return nil
		default:
			fmt.Fprintln(c.out, c.msgs.InvalidOption)
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.msgs.Welcome)
	for _, item := range c.msgs.Menu {
		fmt.Fprintln(c.out, item)
	}
	fmt.Fprint(c.out, c.msgs.ChoicePrompt)
}

// prompt prints text and reads the answer. A blank answer or the end of
// input returns false.
func (c *Console) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	line, ok := c.readLine()
	if !ok || strings.TrimSpace(line) == "" {
		return "", false
	}
	return line, true
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) inputTransactions(ctx context.Context) {
	line, ok := c.prompt(c.msgs.TransactionPrompt)
	if !ok {
		return
	}

	in, err := ParseTransaction(line)
	if err != nil {
		c.reject(err)
		return
	}

	if _, err := c.bank.AddTransaction(ctx, in.AccountID, in.Date, in.Kind, in.Amount); err != nil {
		c.reject(err)
		return
	}

	fmt.Fprintln(c.out, c.msgs.TransactionAdded)
	WriteTransactions(c.out, in.AccountID, c.bank.History(ctx, in.AccountID))
}

func (c *Console) defineRules(ctx context.Context) {
	line, ok := c.prompt(c.msgs.RulePrompt)
	if !ok {
		return
	}

	in, err := ParseRule(line)
	if err != nil {
		c.reject(err)
		return
	}

	if _, err := c.bank.AddInterestRule(ctx, in.Date, in.RuleID, in.Rate); err != nil {
		c.reject(err)
		return
	}

	fmt.Fprintln(c.out, c.msgs.RuleAdded)
	WriteRules(c.out, c.bank.InterestRules(ctx))
}

func (c *Console) printStatement(ctx context.Context) {
	line, ok := c.prompt(c.msgs.StatementPrompt)
	if !ok {
		return
	}

	in, err := ParseStatement(line)
	if err != nil {
		c.reject(err)
		return
	}

	stmt, err := c.bank.PrintStatement(ctx, in.AccountID, in.Period.Year, in.Period.Month)
	if errors.Is(err, statement.ErrNoTransactions) {
		fmt.Fprintln(c.out, c.msgs.NoData)
		return
	}
	if err != nil {
		c.reject(err)
		return
	}

	WriteTransactions(c.out, stmt.AccountID, stmt.Transactions)
}

func (c *Console) reject(err error) {
	c.logger.Debug("input rejected", zap.Error(err))
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			fmt.Fprintln(c.out, r.text)
			return
		}
	}
	fmt.Fprintf(c.out, "Incorrect input: %v\n", err)
}
