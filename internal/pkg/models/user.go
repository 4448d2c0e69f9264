package models

import (
	"github.com/shopspring/decimal"
)

// UserRole represents the privilege level of a user
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

// IsValid reports whether r is a known role
func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleUser
}

// User represents a ledger account holder
type User struct {
	ID             int64           `json:"id" db:"id"`
	Balance        decimal.Decimal `json:"balance" db:"balance"`
	CommissionRate decimal.Decimal `json:"commission_rate" db:"commission_rate"`
	WebhookURL     *string         `json:"webhook_url,omitempty" db:"webhook_url"`
	Role           UserRole        `json:"role" db:"role"`
}

// IsAdmin reports whether the user was provisioned as an administrator
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Commission returns the fee charged on amount at the user's commission rate.
// The result is rounded to the scale of the amount columns.
func (u *User) Commission(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(u.CommissionRate).Round(AmountScale)
}

// CanCover reports whether the balance covers total without going negative
func (u *User) CanCover(total decimal.Decimal) bool {
	return u.Balance.GreaterThanOrEqual(total)
}

// Webhook returns the webhook URL or an empty string when none is set
func (u *User) Webhook() string {
	if u.WebhookURL == nil {
		return ""
	}
	return *u.WebhookURL
}

// CreateUserRequest carries the provisioning parameters of a user
type CreateUserRequest struct {
	Balance        decimal.Decimal `json:"balance"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	WebhookURL     string          `json:"webhook_url" validate:"omitempty,url,startswith=http"`
}
