package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gicbank/internal/domain/ratetable"
	"gicbank/internal/shared/calendar"
)

// RuleService manages the interest rate table.
type RuleService interface {
	AddInterestRule(ctx context.Context, date time.Time, ruleID string, rate decimal.Decimal) (ratetable.Rule, error)
	InterestRules(ctx context.Context) []ratetable.Rule
}

type RuleHandler struct {
	svc    RuleService
	logger *zap.Logger
}

func NewRuleHandler(svc RuleService, logger *zap.Logger) *RuleHandler {
	return &RuleHandler{svc: svc, logger: logger}
}

type CreateRuleRequest struct {
	Date   string           `json:"date"`
	RuleID string           `json:"ruleId"`
	Rate   *decimal.Decimal `json:"rate"`
}

// HandleInterestRules routes requests to the appropriate handler based on method
func (h *RuleHandler) HandleInterestRules(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListRules(w, r)
	case http.MethodPost:
		h.handleCreateRule(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *RuleHandler) handleListRules(w http.ResponseWriter, r *http.Request) {
	rules := h.svc.InterestRules(r.Context())

	response := make([]RuleResponse, 0, len(rules))
	for _, rule := range rules {
		response = append(response, toRuleResponse(rule))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *RuleHandler) handleCreateRule(w http.ResponseWriter, r *http.Request) {
	var req CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Date == "" || req.RuleID == "" || req.Rate == nil {
		http.Error(w, "date, ruleId, and rate are required", http.StatusBadRequest)
		return
	}

	date, err := calendar.ParseDay(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rule, err := h.svc.AddInterestRule(r.Context(), date, strings.ToUpper(strings.TrimSpace(req.RuleID)), *req.Rate)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRuleResponse(rule))
}
