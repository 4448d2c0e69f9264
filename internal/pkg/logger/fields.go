package logger

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Field aliases zap.Field so callers do not import zap directly
type Field = zap.Field

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 constructs a field that carries an int64 value
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Decimal constructs a field that carries a money amount in its exact string form
func Decimal(key string, val decimal.Decimal) Field {
	return zap.String(key, val.String())
}

// UserID constructs the user_id field
func UserID(id int64) Field {
	return zap.Int64("user_id", id)
}

// TransactionID constructs the transaction_id field
func TransactionID(id int64) Field {
	return zap.Int64("transaction_id", id)
}
