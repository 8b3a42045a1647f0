package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gicbank/internal/domain/interest"
	"gicbank/internal/domain/statement"
)

// AccountService is the read side of the bank.
type AccountService interface {
	Accounts(ctx context.Context) []string
	Balance(ctx context.Context, accountID string) decimal.Decimal
	PrintStatement(ctx context.Context, accountID string, year int, month time.Month) (*statement.Statement, error)
}

type AccountHandler struct {
	svc    AccountService
	logger *zap.Logger
}

func NewAccountHandler(svc AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, logger: logger}
}

// HandleListAccounts returns every known account ID.
func (h *AccountHandler) HandleListAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Accounts(r.Context()))
}

// HandleBalance returns the live balance. Unknown accounts report zero.
func (h *AccountHandler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	accountID := strings.ToUpper(r.PathValue("id"))
	writeJSON(w, http.StatusOK, BalanceResponse{
		AccountID: accountID,
		Balance:   h.svc.Balance(r.Context(), accountID).StringFixed(2),
	})
}

// HandleStatement returns the monthly statement with its interest line.
func (h *AccountHandler) HandleStatement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	accountID := strings.ToUpper(r.PathValue("id"))
	period, err := interest.ParsePeriod(r.PathValue("period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stmt, err := h.svc.PrintStatement(r.Context(), accountID, period.Year, period.Month)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatementResponse(stmt))
}
