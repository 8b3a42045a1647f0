// Package ratetable keeps the time-ordered interest rules and answers which
// rate is in force on a given day.
package ratetable

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"gicbank/internal/shared/calendar"
)

// Table is the ordered collection of interest rules.
// It is not safe for concurrent use; the bank service serialises access.
type Table struct {
	// sorted by Date, rules sharing a date stay in insertion order
	rules []Rule
}

// New creates an empty rate table
func New() *Table {
	return &Table{}
}

// AddRule inserts a rule. Rules with the same effective date are all kept;
// the most recently inserted one wins on lookup.
func (t *Table) AddRule(date time.Time, ruleID string, rate decimal.Decimal) (Rule, error) {
	rule := Rule{Date: calendar.Day(date), ID: ruleID, Rate: rate}
	if err := rule.Validate(); err != nil {
		return Rule{}, err
	}

	i := t.upperBound(rule.Date)
	t.rules = append(t.rules, Rule{})
	copy(t.rules[i+1:], t.rules[i:])
	t.rules[i] = rule

	return rule, nil
}

// RateOnDate returns the annual rate percentage in force on date, or zero
// when no rule is effective yet.
func (t *Table) RateOnDate(date time.Time) decimal.Decimal {
	i := t.upperBound(calendar.Day(date))
	if i == 0 {
		return decimal.Zero
	}
	return t.rules[i-1].Rate
}

// Rules returns a copy of all rules ordered by effective date.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// upperBound returns the index of the first rule effective after day.
func (t *Table) upperBound(day time.Time) int {
	return sort.Search(len(t.rules), func(i int) bool {
		return t.rules[i].Date.After(day)
	})
}
