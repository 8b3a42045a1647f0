// Package interest computes the monthly interest line of a statement from
// daily balances and the rate table.
package interest

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"gicbank/internal/domain/ledger"
)

var (
	hundred    = decimal.NewFromInt(100)
	daysInYear = decimal.NewFromInt(365)
)

// RateSource answers which annual rate percentage applies on a day.
type RateSource interface {
	RateOnDate(date time.Time) decimal.Decimal
}

// Calculator accrues interest for one account and one month.
type Calculator struct {
	rates RateSource
}

// NewCalculator creates a calculator reading rates from rates.
func NewCalculator(rates RateSource) *Calculator {
	return &Calculator{rates: rates}
}

// Accrue returns the synthesized interest transaction for period.
//
// Each transaction in the period holds its balance from its own date until
// the next transaction's date, the last one until month end. Every day earns
// round2(balance * rate / 100); the month total is round2(sum / 365). The
// per-day rounding is observable in statements and must not be collapsed.
//
// history may contain transactions outside period; they are ignored.
// liveBalance is the account balance at calculation time.
func (c *Calculator) Accrue(period Period, history []ledger.Transaction, liveBalance decimal.Decimal) ledger.Transaction {
	txns := inPeriod(period, history)

	sum := decimal.Zero
	for i, txn := range txns {
		end := period.End()
		if i+1 < len(txns) {
			end = txns[i+1].Date
		}
		for d := txn.Date; d.Before(end); d = d.AddDate(0, 0, 1) {
			sum = sum.Add(DailyInterest(txn.Balance, c.rates.RateOnDate(d)))
		}
	}

	total := Round2(sum.Div(daysInYear))

	var accountID string
	if len(txns) > 0 {
		accountID = txns[0].AccountID
	}

	return ledger.Transaction{
		AccountID: accountID,
		Date:      period.LastDay(),
		Kind:      ledger.Interest,
		Amount:    total,
		Balance:   liveBalance.Add(total),
	}
}

// DailyInterest is one day's pre-rounded accrual on balance at an annual rate
// percentage.
func DailyInterest(balance, ratePercent decimal.Decimal) decimal.Decimal {
	return Round2(balance.Mul(ratePercent).Div(hundred))
}

// Round2 rounds half to even at two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

func inPeriod(period Period, history []ledger.Transaction) []ledger.Transaction {
	var out []ledger.Transaction
	for _, txn := range history {
		if period.Contains(txn.Date) {
			out = append(out, txn)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
