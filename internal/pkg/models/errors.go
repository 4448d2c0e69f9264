package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUserNotFound        = errors.New("user not found")
	ErrNotFound            = errors.New("transaction not found")
	ErrInvalidTransition   = errors.New("transaction status cannot be changed")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInsufficientBalance = errors.New("insufficient balance in user wallet")
	ErrConflict            = errors.New("conflict")
)

// InsufficientFundsError reports a creation rejected for lack of funds.
// The attempt is still recorded as a canceled transaction.
type InsufficientFundsError struct {
	TransactionID int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds, transaction %d canceled", e.TransactionID)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
