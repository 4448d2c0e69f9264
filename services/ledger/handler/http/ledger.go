package http

import (
	"github.com/piresc/ledger/services/ledger"
)

// LedgerHandler handles HTTP requests for ledger operations
type LedgerHandler struct {
	ledgerUC  ledger.LedgerUC
	sessionUC ledger.SessionUC
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(
	ledgerUC ledger.LedgerUC,
	sessionUC ledger.SessionUC,
) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC:  ledgerUC,
		sessionUC: sessionUC,
	}
}
