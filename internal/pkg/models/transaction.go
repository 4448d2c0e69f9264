package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places kept for money columns
const AmountScale = 8

// maxAmount bounds the integer part of the NUMERIC(20,8) money columns
var maxAmount = decimal.New(1, 20-AmountScale)

// FitsAmountColumn reports whether d can be stored in a money column
// without being rounded or overflowing it.
func FitsAmountColumn(d decimal.Decimal) bool {
	return d.Abs().LessThan(maxAmount) && d.Equal(d.Truncate(AmountScale))
}

// TransactionStatus represents the lifecycle state of a transaction.
//
//	PENDING -> CONFIRMED | CANCELED | EXPIRED
//
// CONFIRMED, CANCELED and EXPIRED are terminal.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusConfirmed TransactionStatus = "CONFIRMED"
	TransactionStatusCanceled  TransactionStatus = "CANCELED"
	TransactionStatusExpired   TransactionStatus = "EXPIRED"
)

// ParseTransactionStatus parses a status name case-insensitively
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	status := TransactionStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case TransactionStatusPending, TransactionStatusConfirmed,
		TransactionStatusCanceled, TransactionStatusExpired:
		return status, nil
	}
	return "", fmt.Errorf("%w: unknown transaction status %q", ErrInvalidInput, s)
}

// IsTerminal reports whether no further transition is allowed from s
func (s TransactionStatus) IsTerminal() bool {
	return s != TransactionStatusPending
}

// CanTransitionTo reports whether the state machine allows s -> next
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if s != TransactionStatusPending {
		return false
	}
	switch next {
	case TransactionStatusConfirmed, TransactionStatusCanceled, TransactionStatusExpired:
		return true
	}
	return false
}

// Transaction represents a debit recorded against a user balance
type Transaction struct {
	ID         int64             `json:"id" db:"id"`
	Amount     decimal.Decimal   `json:"amount" db:"amount"`
	Commission decimal.Decimal   `json:"commission" db:"commission"`
	Status     TransactionStatus `json:"status" db:"status"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
	UserID     int64             `json:"user_id" db:"user_id"`
}

// Total returns amount plus commission
func (t *Transaction) Total() decimal.Decimal {
	return t.Amount.Add(t.Commission)
}

// DebitMode selects when a transaction is charged to the user balance
type DebitMode string

const (
	// DebitModeDouble charges amount+commission at creation and amount again at confirmation
	DebitModeDouble DebitMode = "double"
	// DebitModeCreation charges amount+commission at creation only
	DebitModeCreation DebitMode = "creation"
	// DebitModeConfirmation charges amount+commission at confirmation only
	DebitModeConfirmation DebitMode = "confirmation"
)

// ParseDebitMode parses a debit mode, falling back to DebitModeDouble for empty input
func ParseDebitMode(s string) (DebitMode, error) {
	switch mode := DebitMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return DebitModeDouble, nil
	case DebitModeDouble, DebitModeCreation, DebitModeConfirmation:
		return mode, nil
	}
	return "", fmt.Errorf("unknown debit mode %q", s)
}

// CreationDebit returns what is taken from the balance when a transaction is accepted
func (m DebitMode) CreationDebit(amount, commission decimal.Decimal) decimal.Decimal {
	if m == DebitModeConfirmation {
		return decimal.Zero
	}
	return amount.Add(commission)
}

// ConfirmationDebit returns what is taken from the balance when trx is confirmed
func (m DebitMode) ConfirmationDebit(trx *Transaction) decimal.Decimal {
	switch m {
	case DebitModeCreation:
		return decimal.Zero
	case DebitModeConfirmation:
		return trx.Total()
	default:
		return trx.Amount
	}
}

// CreateTransactionRequest is the payload of a transaction creation
type CreateTransactionRequest struct {
	UserID int64           `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}

// UpdateTransactionStatusRequest is the payload of a status change
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CancelTransactionRequest is the payload of a direct cancellation
type CancelTransactionRequest struct {
	TransactionID int64 `json:"transaction_id"`
}
