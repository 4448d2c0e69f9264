package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEventType names a lifecycle event
type TransactionEventType string

const (
	TransactionEventCreated   TransactionEventType = "transaction.created"
	TransactionEventConfirmed TransactionEventType = "transaction.confirmed"
	TransactionEventCanceled  TransactionEventType = "transaction.canceled"
)

// TransactionEvent is published after a transaction is committed
type TransactionEvent struct {
	Type          TransactionEventType `json:"type"`
	TransactionID int64                `json:"transaction_id"`
	UserID        int64                `json:"user_id"`
	Amount        decimal.Decimal      `json:"amount"`
	Commission    decimal.Decimal      `json:"commission"`
	Status        TransactionStatus    `json:"status"`
	WebhookURL    string               `json:"webhook_url,omitempty"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

// NewTransactionEvent builds an event for trx owned by user
func NewTransactionEvent(eventType TransactionEventType, trx *Transaction, user *User, at time.Time) TransactionEvent {
	event := TransactionEvent{
		Type:          eventType,
		TransactionID: trx.ID,
		UserID:        trx.UserID,
		Amount:        trx.Amount,
		Commission:    trx.Commission,
		Status:        trx.Status,
		OccurredAt:    at,
	}
	if user != nil {
		event.WebhookURL = user.Webhook()
	}
	return event
}
