package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    TransactionStatus
		wantErr bool
	}{
		{input: "PENDING", want: TransactionStatusPending},
		{input: "confirmed", want: TransactionStatusConfirmed},
		{input: " Canceled ", want: TransactionStatusCanceled},
		{input: "expired", want: TransactionStatusExpired},
		{input: "cancelled", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTransactionStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanTransitionTo(t *testing.T) {
	all := []TransactionStatus{
		TransactionStatusPending,
		TransactionStatusConfirmed,
		TransactionStatusCanceled,
		TransactionStatusExpired,
	}

	for _, from := range all {
		for _, to := range all {
			want := from == TransactionStatusPending && to != TransactionStatusPending
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
		assert.Equal(t, from != TransactionStatusPending, from.IsTerminal())
	}
}

func TestDebitModes(t *testing.T) {
	amount := decimal.RequireFromString("50")
	commission := decimal.RequireFromString("5")
	trx := &Transaction{Amount: amount, Commission: commission}

	tests := []struct {
		mode             DebitMode
		wantCreation     string
		wantConfirmation string
	}{
		{mode: DebitModeDouble, wantCreation: "55", wantConfirmation: "50"},
		{mode: DebitModeCreation, wantCreation: "55", wantConfirmation: "0"},
		{mode: DebitModeConfirmation, wantCreation: "0", wantConfirmation: "55"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.True(t, tt.mode.CreationDebit(amount, commission).Equal(decimal.RequireFromString(tt.wantCreation)))
			assert.True(t, tt.mode.ConfirmationDebit(trx).Equal(decimal.RequireFromString(tt.wantConfirmation)))
		})
	}
}

func TestParseDebitMode(t *testing.T) {
	mode, err := ParseDebitMode("")
	require.NoError(t, err)
	assert.Equal(t, DebitModeDouble, mode)

	mode, err = ParseDebitMode("Confirmation")
	require.NoError(t, err)
	assert.Equal(t, DebitModeConfirmation, mode)

	_, err = ParseDebitMode("never")
	assert.Error(t, err)
}

func TestInsufficientFundsError(t *testing.T) {
	var err error = &InsufficientFundsError{TransactionID: 12}

	assert.True(t, errors.Is(err, ErrInsufficientFunds))
	assert.Equal(t, "insufficient funds, transaction 12 canceled", err.Error())

	var target *InsufficientFundsError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, int64(12), target.TransactionID)
}

func TestFitsAmountColumn(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "0", want: true},
		{input: "50.5", want: true},
		{input: "0.00000001", want: true},
		{input: "0.10000000000", want: true},
		{input: "999999999999.99999999", want: true},
		{input: "-999999999999.99999999", want: true},
		{input: "0.000000004", want: false},
		{input: "1.123456789", want: false},
		{input: "1000000000000", want: false},
		{input: "-1000000000000", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FitsAmountColumn(decimal.RequireFromString(tt.input)))
		})
	}
}
