package ratetable

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Domain errors
var (
	ErrInvalidRule   = errors.New("invalid interest rate")
	ErrMissingRuleID = errors.New("rule ID is required")
)

// Rule is an annual interest rate that applies to every account from its
// effective date until a later rule takes over.
type Rule struct {
	Date time.Time
	ID   string
	Rate decimal.Decimal
}

// Validate validates the rule fields
func (r Rule) Validate() error {
	if r.Rate.IsNegative() {
		return ErrInvalidRule
	}
	if r.ID == "" {
		return ErrMissingRuleID
	}
	return nil
}
