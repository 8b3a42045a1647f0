package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gicbank/internal/domain/bank"
	"gicbank/internal/domain/ledger"
	"gicbank/internal/domain/ratetable"
	"gicbank/internal/domain/statement"
)

// MockTransactionService implements TransactionService for testing
type MockTransactionService struct {
	AddTransactionFunc func(ctx context.Context, accountID string, date time.Time, kind ledger.Kind, amount decimal.Decimal) (ledger.Transaction, error)
}

func (m *MockTransactionService) AddTransaction(ctx context.Context, accountID string, date time.Time, kind ledger.Kind, amount decimal.Decimal) (ledger.Transaction, error) {
	if m.AddTransactionFunc != nil {
		return m.AddTransactionFunc(ctx, accountID, date, kind, amount)
	}
	return ledger.Transaction{}, nil
}

// MockAccountService implements AccountService for testing
type MockAccountService struct {
	PrintStatementFunc func(ctx context.Context, accountID string, year int, month time.Month) (*statement.Statement, error)
}

func (m *MockAccountService) Accounts(ctx context.Context) []string {
	return []string{"AC001"}
}

func (m *MockAccountService) Balance(ctx context.Context, accountID string) decimal.Decimal {
	return decimal.Zero
}

func (m *MockAccountService) PrintStatement(ctx context.Context, accountID string, year int, month time.Month) (*statement.Statement, error) {
	if m.PrintStatementFunc != nil {
		return m.PrintStatementFunc(ctx, accountID, year, month)
	}
	return nil, statement.ErrNoTransactions
}

func newTestService() *bank.Service {
	return bank.NewService(ledger.New(), ratetable.New(), zap.NewNop())
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestHandleCreateTransaction(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
	}{
		{
			name:           "Deposit",
			body:           map[string]any{"date": "20230601", "account": "ac001", "type": "D", "amount": "150.00"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Numeric amount",
			body:           map[string]any{"date": "20230601", "account": "AC001", "type": "deposit", "amount": 10.5},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing amount",
			body:           map[string]any{"date": "20230601", "account": "AC001", "type": "D"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad date",
			body:           map[string]any{"date": "2023-06-01", "account": "AC001", "type": "D", "amount": "1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad type",
			body:           map[string]any{"date": "20230601", "account": "AC001", "type": "X", "amount": "1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Negative amount",
			body:           map[string]any{"date": "20230601", "account": "AC001", "type": "D", "amount": "-1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Interest type rejected",
			body:           map[string]any{"date": "20230601", "account": "AC001", "type": "I", "amount": "1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Withdrawal from unknown account",
			body:           map[string]any{"date": "20230601", "account": "AC999", "type": "W", "amount": "1"},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTransactionHandler(newTestService(), zap.NewNop())

			rr := postJSON(t, handler.HandleCreateTransaction, "/api/transactions", tt.body)
			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body %q)", rr.Code, tt.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestHandleCreateTransaction_Response(t *testing.T) {
	handler := NewTransactionHandler(newTestService(), zap.NewNop())

	rr := postJSON(t, handler.HandleCreateTransaction, "/api/transactions",
		map[string]any{"date": "20230601", "account": "ac001", "type": "D", "amount": "150"})

	var resp TransactionResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := TransactionResponse{ID: "20230601-01", AccountID: "AC001", Date: "20230601", Type: "D", Amount: "150.00", Balance: "150.00"}
	if resp != want {
		t.Errorf("response = %+v, want %+v", resp, want)
	}
}

func TestHandleCreateTransaction_InsufficientFunds(t *testing.T) {
	svc := newTestService()
	handler := NewTransactionHandler(svc, zap.NewNop())

	postJSON(t, handler.HandleCreateTransaction, "/api/transactions",
		map[string]any{"date": "20230601", "account": "AC001", "type": "D", "amount": "10"})
	rr := postJSON(t, handler.HandleCreateTransaction, "/api/transactions",
		map[string]any{"date": "20230602", "account": "AC001", "type": "W", "amount": "10.01"})

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnprocessableEntity)
	}
}

func TestHandleCreateTransaction_MethodAndBody(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{}, zap.NewNop())

	rr := httptest.NewRecorder()
	handler.HandleCreateTransaction(rr, httptest.NewRequest(http.MethodGet, "/api/transactions", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}

	rr = httptest.NewRecorder()
	handler.HandleCreateTransaction(rr, httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewBufferString("{")))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad body status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestHandleCreateTransaction_UnexpectedError(t *testing.T) {
	mock := &MockTransactionService{
		AddTransactionFunc: func(ctx context.Context, accountID string, date time.Time, kind ledger.Kind, amount decimal.Decimal) (ledger.Transaction, error) {
			return ledger.Transaction{}, errors.New("boom")
		},
	}
	handler := NewTransactionHandler(mock, zap.NewNop())

	rr := postJSON(t, handler.HandleCreateTransaction, "/api/transactions",
		map[string]any{"date": "20230601", "account": "AC001", "type": "D", "amount": "1"})
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestHandleInterestRules(t *testing.T) {
	handler := NewRuleHandler(newTestService(), zap.NewNop())

	for _, body := range []map[string]any{
		{"date": "20230615", "ruleId": "rule03", "rate": "2.20"},
		{"date": "20230101", "ruleId": "RULE01", "rate": "1.95"},
	} {
		rr := postJSON(t, handler.HandleInterestRules, "/api/interest-rules", body)
		if rr.Code != http.StatusCreated {
			t.Fatalf("create status = %d, want %d (body %q)", rr.Code, http.StatusCreated, rr.Body.String())
		}
	}

	rr := postJSON(t, handler.HandleInterestRules, "/api/interest-rules",
		map[string]any{"date": "20230101", "ruleId": "BAD", "rate": "-0.5"})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("negative rate status = %d, want %d", rr.Code, http.StatusBadRequest)
	}

	rr = postJSON(t, handler.HandleInterestRules, "/api/interest-rules", map[string]any{"date": "20230101"})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("missing fields status = %d, want %d", rr.Code, http.StatusBadRequest)
	}

	rr = httptest.NewRecorder()
	handler.HandleInterestRules(rr, httptest.NewRequest(http.MethodGet, "/api/interest-rules", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("list status = %d, want %d", rr.Code, http.StatusOK)
	}

	var rules []RuleResponse
	if err := json.NewDecoder(rr.Body).Decode(&rules); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rules) != 2 || rules[0].RuleID != "RULE01" || rules[1].RuleID != "RULE03" || rules[1].Rate != "2.20" {
		t.Errorf("rules = %+v", rules)
	}

	rr = httptest.NewRecorder()
	handler.HandleInterestRules(rr, httptest.NewRequest(http.MethodDelete, "/api/interest-rules", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleStatement(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	day := func(s string) time.Time {
		d, _ := time.Parse("20060102", s)
		return d
	}
	svc.AddInterestRule(ctx, day("20230101"), "RULE01", decimal.RequireFromString("1.95"))
	svc.AddInterestRule(ctx, day("20230520"), "RULE02", decimal.RequireFromString("1.90"))
	svc.AddInterestRule(ctx, day("20230615"), "RULE03", decimal.RequireFromString("2.20"))
	svc.AddTransaction(ctx, "AC001", day("20230505"), ledger.Deposit, decimal.NewFromInt(100))
	svc.AddTransaction(ctx, "AC001", day("20230601"), ledger.Deposit, decimal.NewFromInt(150))
	svc.AddTransaction(ctx, "AC001", day("20230626"), ledger.Withdrawal, decimal.NewFromInt(20))
	svc.AddTransaction(ctx, "AC001", day("20230626"), ledger.Withdrawal, decimal.NewFromInt(100))

	handler := NewAccountHandler(svc, zap.NewNop())

	tests := []struct {
		name           string
		account        string
		period         string
		expectedStatus int
	}{
		{name: "June statement", account: "ac001", period: "202306", expectedStatus: http.StatusOK},
		{name: "Empty month", account: "AC001", period: "202307", expectedStatus: http.StatusNotFound},
		{name: "Unknown account", account: "AC404", period: "202306", expectedStatus: http.StatusNotFound},
		{name: "Bad period", account: "AC001", period: "2023-06", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/accounts/"+tt.account+"/statements/"+tt.period, nil)
			req.SetPathValue("id", tt.account)
			req.SetPathValue("period", tt.period)

			rr := httptest.NewRecorder()
			handler.HandleStatement(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d (body %q)", rr.Code, tt.expectedStatus, rr.Body.String())
			}
			if rr.Code != http.StatusOK {
				return
			}

			var resp StatementResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Interest != "0.39" || len(resp.Transactions) != 4 {
				t.Errorf("interest = %s, transactions = %d, want 0.39 and 4", resp.Interest, len(resp.Transactions))
			}
			last := resp.Transactions[len(resp.Transactions)-1]
			if last.Type != "I" || last.ID != "" || last.Date != "20230630" || last.Balance != "130.39" {
				t.Errorf("interest line = %+v", last)
			}
		})
	}
}

func TestHandleStatement_UnexpectedError(t *testing.T) {
	mock := &MockAccountService{
		PrintStatementFunc: func(ctx context.Context, accountID string, year int, month time.Month) (*statement.Statement, error) {
			return nil, errors.New("boom")
		},
	}
	handler := NewAccountHandler(mock, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/AC001/statements/202306", nil)
	req.SetPathValue("id", "AC001")
	req.SetPathValue("period", "202306")
	rr := httptest.NewRecorder()
	handler.HandleStatement(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestHandleBalanceAndAccounts(t *testing.T) {
	svc := newTestService()
	svc.AddTransaction(context.Background(), "AC002", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), ledger.Deposit, decimal.RequireFromString("12.5"))
	handler := NewAccountHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/AC002/balance", nil)
	req.SetPathValue("id", "ac002")
	rr := httptest.NewRecorder()
	handler.HandleBalance(rr, req)

	var bal BalanceResponse
	if err := json.NewDecoder(rr.Body).Decode(&bal); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bal.AccountID != "AC002" || bal.Balance != "12.50" {
		t.Errorf("balance = %+v", bal)
	}

	rr = httptest.NewRecorder()
	handler.HandleListAccounts(rr, httptest.NewRequest(http.MethodGet, "/api/accounts/", nil))
	var ids []string
	if err := json.NewDecoder(rr.Body).Decode(&ids); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ids) != 1 || ids[0] != "AC002" {
		t.Errorf("accounts = %v, want [AC002]", ids)
	}

	rr = httptest.NewRecorder()
	handler.HandleListAccounts(rr, httptest.NewRequest(http.MethodPost, "/api/accounts/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	HandleHealth(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != `{"status":"ok"}` {
		t.Errorf("got %d %q", rr.Code, rr.Body.String())
	}
}
