package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gicbank/internal/domain/ledger"
	"gicbank/internal/shared/calendar"
)

// TransactionService records deposits and withdrawals.
type TransactionService interface {
	AddTransaction(ctx context.Context, accountID string, date time.Time, kind ledger.Kind, amount decimal.Decimal) (ledger.Transaction, error)
}

type TransactionHandler struct {
	svc    TransactionService
	logger *zap.Logger
}

func NewTransactionHandler(svc TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{svc: svc, logger: logger}
}

// CreateTransactionRequest carries a yyyyMMdd date and a D or W type.
type CreateTransactionRequest struct {
	Date      string           `json:"date"`
	AccountID string           `json:"account"`
	Type      string           `json:"type"`
	Amount    *decimal.Decimal `json:"amount"`
}

// HandleCreateTransaction records one transaction and returns it.
func (h *TransactionHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Date == "" || req.AccountID == "" || req.Type == "" || req.Amount == nil {
		http.Error(w, "date, account, type, and amount are required", http.StatusBadRequest)
		return
	}

	date, err := calendar.ParseDay(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	kind, err := ledger.ParseKind(req.Type)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	accountID := strings.ToUpper(strings.TrimSpace(req.AccountID))
	txn, err := h.svc.AddTransaction(r.Context(), accountID, date, kind, *req.Amount)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(txn))
}
