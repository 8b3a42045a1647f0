// Package bank exposes the three operations of the ledger engine (add
// transaction, add interest rule, print statement) over one owned ledger and
// rate table.
package bank

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"gicbank/internal/domain/interest"
	"gicbank/internal/domain/ledger"
	"gicbank/internal/domain/ratetable"
	"gicbank/internal/domain/statement"
	"gicbank/internal/shared/calendar"
)

var (
	bankTracer       = otel.Tracer("gicbank/bank")
	bankMeter        = otel.Meter("gicbank/bank")
	opDuration, _    = bankMeter.Float64Histogram("bank.operation.duration", metric.WithDescription("Bank operation duration in seconds"), metric.WithUnit("s"))
	opTotal, _       = bankMeter.Int64Counter("bank.operation.total", metric.WithDescription("Bank operations by outcome"))
	interestTotal, _ = bankMeter.Float64Counter("bank.statement.interest", metric.WithDescription("Interest amount reported on generated statements"))
)

// Outcomes recorded on spans and metrics.
const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeNoData   = "no_data"
)

var validationErrors = []error{
	ledger.ErrInvalidAmount,
	ledger.ErrNoAccountForWithdrawal,
	ledger.ErrInsufficientFunds,
	ledger.ErrInvalidAccountID,
	ledger.ErrInvalidKind,
	ratetable.ErrInvalidRule,
	ratetable.ErrMissingRuleID,
	interest.ErrInvalidPeriod,
}

// IsValidationError reports whether err is a rejected request rather than a
// statement with nothing to show.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Service serialises every read and write of the ledger and rate table
// behind a single mutex, so statements never observe a half-applied change.
type Service struct {
	mu         sync.Mutex
	ledger     *ledger.Ledger
	rates      *ratetable.Table
	statements *statement.Generator
	logger     *zap.Logger
}

// NewService wires a service around an existing ledger and rate table.
func NewService(l *ledger.Ledger, rates *ratetable.Table, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		ledger:     l,
		rates:      rates,
		statements: statement.NewGenerator(l, interest.NewCalculator(rates)),
		logger:     logger.Named("bank"),
	}
}

// AddTransaction records a deposit or withdrawal.
func (s *Service) AddTransaction(ctx context.Context, accountID string, date time.Time, kind ledger.Kind, amount decimal.Decimal) (ledger.Transaction, error) {
	ctx, span := s.start(ctx, "bank.AddTransaction",
		attribute.String("account.id", accountID),
		attribute.String("transaction.type", kind.Code()),
		attribute.String("transaction.date", calendar.FormatDay(date)),
	)
	defer span.End()
	start := time.Now()

	s.mu.Lock()
	txn, err := s.ledger.RecordTransaction(accountID, date, kind, amount)
	s.mu.Unlock()

	s.finish(ctx, span, "add_transaction", start, err)
	if err != nil {
		s.logger.Debug("transaction rejected",
			zap.String("account", accountID),
			zap.Stringer("type", kind),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
		return ledger.Transaction{}, err
	}

	span.SetAttributes(attribute.String("transaction.id", txn.ID))
	s.logger.Debug("transaction recorded",
		zap.String("account", accountID),
		zap.String("id", txn.ID),
		zap.String("balance", txn.Balance.StringFixed(2)),
	)
	return txn, nil
}

// AddInterestRule stores a rule that applies to every account.
func (s *Service) AddInterestRule(ctx context.Context, date time.Time, ruleID string, rate decimal.Decimal) (ratetable.Rule, error) {
	ctx, span := s.start(ctx, "bank.AddInterestRule",
		attribute.String("rule.id", ruleID),
		attribute.String("rule.date", calendar.FormatDay(date)),
	)
	defer span.End()
	start := time.Now()

	s.mu.Lock()
	rule, err := s.rates.AddRule(date, ruleID, rate)
	s.mu.Unlock()

	s.finish(ctx, span, "add_interest_rule", start, err)
	if err != nil {
		s.logger.Debug("interest rule rejected",
			zap.String("rule", ruleID),
			zap.String("rate", rate.String()),
			zap.Error(err),
		)
		return ratetable.Rule{}, err
	}

	s.logger.Debug("interest rule added", zap.String("rule", ruleID), zap.String("rate", rate.String()))
	return rule, nil
}

// PrintStatement returns the month's transactions plus the interest line.
// statement.ErrNoTransactions is returned when the month is empty.
func (s *Service) PrintStatement(ctx context.Context, accountID string, year int, month time.Month) (*statement.Statement, error) {
	ctx, span := s.start(ctx, "bank.PrintStatement",
		attribute.String("account.id", accountID),
		attribute.Int("statement.year", year),
		attribute.Int("statement.month", int(month)),
	)
	defer span.End()
	start := time.Now()

	period, err := interest.NewPeriod(year, month)
	if err != nil {
		s.finish(ctx, span, "print_statement", start, err)
		return nil, err
	}

	s.mu.Lock()
	stmt, err := s.statements.Generate(accountID, period)
	s.mu.Unlock()

	s.finish(ctx, span, "print_statement", start, err)
	if err != nil {
		return nil, err
	}

	amount := stmt.Interest().Amount
	span.SetAttributes(attribute.String("statement.interest", amount.StringFixed(2)))
	interestTotal.Add(ctx, amount.InexactFloat64())
	return stmt, nil
}

// InterestRules lists the rate table ordered by effective date.
func (s *Service) InterestRules(ctx context.Context) []ratetable.Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rates.Rules()
}

// Balance returns the live balance of an account, zero when unknown.
func (s *Service) Balance(ctx context.Context, accountID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Balance(accountID)
}

// History returns every transaction of an account in acceptance order.
func (s *Service) History(ctx context.Context, accountID string) []ledger.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.TransactionsFrom(accountID)
}

// Accounts lists known account IDs.
func (s *Service) Accounts(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Accounts()
}

func (s *Service) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return bankTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) finish(ctx context.Context, span trace.Span, op string, start time.Time, err error) {
	outcome := outcomeOK
	switch {
	case errors.Is(err, statement.ErrNoTransactions):
		outcome = outcomeNoData
	case err != nil:
		outcome = outcomeRejected
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.String("bank.outcome", outcome))

	attrs := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	)
	opDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	opTotal.Add(ctx, 1, attrs)
}
