package main

import (
	"go.uber.org/zap"

	"gicbank/internal/domain/bank"
	"gicbank/internal/domain/ledger"
	"gicbank/internal/domain/ratetable"
	httphandlers "gicbank/internal/interfaces/http"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	Bank *bank.Service

	// Handlers
	TransactionHandler *httphandlers.TransactionHandler
	RuleHandler        *httphandlers.RuleHandler
	AccountHandler     *httphandlers.AccountHandler
}

// NewDependencies wires one in-memory ledger and rate table behind the
// bank service and its handlers.
func NewDependencies(logger *zap.Logger) *Dependencies {
	svc := bank.NewService(ledger.New(), ratetable.New(), logger)

	return &Dependencies{
		Bank:               svc,
		TransactionHandler: httphandlers.NewTransactionHandler(svc, logger),
		RuleHandler:        httphandlers.NewRuleHandler(svc, logger),
		AccountHandler:     httphandlers.NewAccountHandler(svc, logger),
	}
}
