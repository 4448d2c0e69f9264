package models

import (
	"github.com/shopspring/decimal"
)

// DashboardStats is the reporting snapshot shown on the dashboard
type DashboardStats struct {
	TotalUsers             int64           `json:"total_users"`
	TotalTransactions      int64           `json:"total_transactions"`
	TotalTransactionAmount decimal.Decimal `json:"total_transaction_amount"`
	RecentTransactions     []*Transaction  `json:"recent_transactions"`
}

// RefreshIntervals lists the dashboard auto-refresh periods in seconds, 0 disables refresh
var RefreshIntervals = []int{0, 10, 15, 30, 60}

// DefaultRefreshInterval is used for sessions that never chose one
const DefaultRefreshInterval = 10

// IsValidRefreshInterval reports whether seconds is an allowed refresh period
func IsValidRefreshInterval(seconds int) bool {
	for _, v := range RefreshIntervals {
		if v == seconds {
			return true
		}
	}
	return false
}

// RefreshIntervalRequest is the payload of a refresh interval change
type RefreshIntervalRequest struct {
	RefreshInterval *int `json:"refresh_interval"`
}
