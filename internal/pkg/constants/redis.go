package constants

// Redis key formats
const (
	// Dashboard
	KeyDashboardStats = "ledger:dashboard:stats"

	// Sessions
	KeySessionRefreshInterval = "ledger:session:%s:refresh_interval" // Format: ledger:session:{session_id}:refresh_interval
)
