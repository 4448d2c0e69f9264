package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
	nrpkg "github.com/piresc/ledger/internal/pkg/newrelic"
	"github.com/piresc/ledger/services/ledger"
	"github.com/shopspring/decimal"
)

// CreateTransaction debits a new transaction from the user balance. When
// the balance cannot cover amount plus commission the attempt is still
// recorded, as CANCELED with zero commission, and *InsufficientFundsError
// carries its id.
func (uc *ledgerUC) CreateTransaction(ctx context.Context, userID int64, amount decimal.Decimal) (int64, error) {
	if userID <= 0 {
		return 0, fmt.Errorf("%w: user_id must be a positive number", models.ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return 0, fmt.Errorf("%w: amount must be a positive number", models.ErrInvalidInput)
	}
	if !models.FitsAmountColumn(amount) {
		return 0, fmt.Errorf("%w: amount must be below 10^12 with at most %d decimal places", models.ErrInvalidInput, models.AmountScale)
	}

	var (
		trx          *models.Transaction
		owner        *models.User
		insufficient bool
	)
	err := nrpkg.WithSegment(ctx, "LedgerUC.CreateTransaction", func() error {
		return uc.repo.Atomic(ctx, func(tx ledger.TxRepo) error {
			user, err := tx.GetUserForUpdate(ctx, userID)
			if err != nil {
				return err
			}
			owner = user

			commission := user.Commission(amount)
			trx = &models.Transaction{
				Amount:     amount,
				Commission: commission,
				Status:     models.TransactionStatusPending,
				CreatedAt:  uc.now(),
				UserID:     user.ID,
			}

			if !user.CanCover(amount.Add(commission)) {
				insufficient = true
				trx.Commission = decimal.Zero
				trx.Status = models.TransactionStatusCanceled
			} else if debit := uc.cfg.Ledger.DebitMode.CreationDebit(amount, commission); debit.IsPositive() {
				user.Balance = user.Balance.Sub(debit)
				if err := tx.UpdateUserBalance(ctx, user.ID, user.Balance); err != nil {
					return err
				}
			}

			id, err := tx.InsertTransaction(ctx, trx)
			if err != nil {
				return err
			}
			trx.ID = id
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	if insufficient {
		logger.WarnCtx(ctx, "Insufficient funds, transaction recorded as canceled",
			logger.UserID(userID),
			logger.TransactionID(trx.ID),
			logger.Decimal("amount", amount),
			logger.Decimal("balance", owner.Balance))
		event := models.NewTransactionEvent(models.TransactionEventCanceled, trx, owner, uc.now())
		uc.afterWrite(ctx, &event)
		return trx.ID, &models.InsufficientFundsError{TransactionID: trx.ID}
	}

	logger.InfoCtx(ctx, "Transaction created",
		logger.UserID(userID),
		logger.TransactionID(trx.ID),
		logger.Decimal("amount", trx.Amount),
		logger.Decimal("commission", trx.Commission))
	event := models.NewTransactionEvent(models.TransactionEventCreated, trx, owner, uc.now())
	uc.afterWrite(ctx, &event)
	return trx.ID, nil
}

// UpdateTransactionStatus moves a PENDING transaction to CONFIRMED or CANCELED
func (uc *ledgerUC) UpdateTransactionStatus(ctx context.Context, id int64, status models.TransactionStatus) error {
	if status != models.TransactionStatusConfirmed && status != models.TransactionStatusCanceled {
		return fmt.Errorf("%w: status must be %s or %s", models.ErrInvalidInput,
			models.TransactionStatusConfirmed, models.TransactionStatusCanceled)
	}
	return uc.transition(ctx, id, status)
}

// CancelTransaction cancels a PENDING transaction. Escrowed funds stay debited.
func (uc *ledgerUC) CancelTransaction(ctx context.Context, id int64) error {
	return uc.transition(ctx, id, models.TransactionStatusCanceled)
}

func (uc *ledgerUC) transition(ctx context.Context, id int64, next models.TransactionStatus) error {
	if id <= 0 {
		return fmt.Errorf("%w: transaction_id must be a positive number", models.ErrInvalidInput)
	}

	var (
		trx   *models.Transaction
		owner *models.User
	)
	err := nrpkg.WithSegment(ctx, "LedgerUC.Transition", func() error {
		return uc.repo.Atomic(ctx, func(tx ledger.TxRepo) error {
			var err error
			trx, err = tx.GetTransactionForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if !trx.Status.CanTransitionTo(next) {
				return fmt.Errorf("%w: transaction %d is %s", models.ErrInvalidTransition, id, trx.Status)
			}

			owner, err = tx.GetUserForUpdate(ctx, trx.UserID)
			if err != nil {
				return err
			}

			if next == models.TransactionStatusConfirmed {
				debit := uc.cfg.Ledger.DebitMode.ConfirmationDebit(trx)
				if !owner.CanCover(debit) {
					return models.ErrInsufficientBalance
				}
				if debit.IsPositive() {
					owner.Balance = owner.Balance.Sub(debit)
					if err := tx.UpdateUserBalance(ctx, owner.ID, owner.Balance); err != nil {
						return err
					}
				}
			}

			if err := tx.UpdateTransactionStatus(ctx, trx.ID, next); err != nil {
				return err
			}
			trx.Status = next
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, models.ErrInsufficientBalance) {
			logger.WarnCtx(ctx, "Insufficient balance to confirm transaction",
				logger.TransactionID(id),
				logger.Decimal("amount", trx.Amount),
				logger.Decimal("balance", owner.Balance))
		}
		return err
	}

	logger.InfoCtx(ctx, "Transaction status updated",
		logger.TransactionID(id),
		logger.String("status", string(next)))

	eventType := models.TransactionEventCanceled
	if next == models.TransactionStatusConfirmed {
		eventType = models.TransactionEventConfirmed
	}
	event := models.NewTransactionEvent(eventType, trx, owner, uc.now())
	uc.afterWrite(ctx, &event)
	return nil
}

// GetTransaction returns a single transaction
func (uc *ledgerUC) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: transaction_id must be a positive number", models.ErrInvalidInput)
	}
	return uc.repo.GetTransaction(ctx, id)
}

// ListTransactions returns every transaction, newest first
func (uc *ledgerUC) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	return uc.repo.ListTransactions(ctx)
}
