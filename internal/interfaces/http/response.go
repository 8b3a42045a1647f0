package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"gicbank/internal/domain/bank"
	"gicbank/internal/domain/ledger"
	"gicbank/internal/domain/ratetable"
	"gicbank/internal/domain/statement"
	"gicbank/internal/shared/calendar"
)

// Response DTOs. Money is rendered as a fixed two-decimal string.

type TransactionResponse struct {
	ID        string `json:"id"`
	AccountID string `json:"accountId"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	Balance   string `json:"balance"`
}

type RuleResponse struct {
	Date   string `json:"date"`
	RuleID string `json:"ruleId"`
	Rate   string `json:"rate"`
}

type StatementResponse struct {
	AccountID    string                `json:"accountId"`
	Period       string                `json:"period"`
	Interest     string                `json:"interest"`
	Transactions []TransactionResponse `json:"transactions"`
}

type BalanceResponse struct {
	AccountID string `json:"accountId"`
	Balance   string `json:"balance"`
}

func toTransactionResponse(t ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		AccountID: t.AccountID,
		Date:      calendar.FormatDay(t.Date),
		Type:      t.Kind.Code(),
		Amount:    t.Amount.StringFixed(2),
		Balance:   t.Balance.StringFixed(2),
	}
}

func toRuleResponse(r ratetable.Rule) RuleResponse {
	return RuleResponse{
		Date:   calendar.FormatDay(r.Date),
		RuleID: r.ID,
		Rate:   r.Rate.StringFixed(2),
	}
}

func toStatementResponse(s *statement.Statement) StatementResponse {
	txns := make([]TransactionResponse, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		txns = append(txns, toTransactionResponse(t))
	}
	return StatementResponse{
		AccountID:    s.AccountID,
		Period:       s.Period,
		Interest:     s.Interest().Amount.StringFixed(2),
		Transactions: txns,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to HTTP status codes.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, statement.ErrNoTransactions):
		http.Error(w, "No transactions found for the account and month", http.StatusNotFound)
	case errors.Is(err, ledger.ErrInsufficientFunds), errors.Is(err, ledger.ErrNoAccountForWithdrawal):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case bank.IsValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error("request failed", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
