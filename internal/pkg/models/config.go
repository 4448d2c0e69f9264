package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Ledger   LedgerConfig
	Webhook  WebhookConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver         string
	Host           string
	Port           int
	Username       string
	Password       string
	Database       string
	SSLMode        string
	MaxConns       int
	IdleConns      int
	MigrateOnStart bool
}

// RedisConfig contains Redis connection configuration.
// An empty Host disables every Redis-backed component.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains the nsqd address used for transaction events.
// An empty Address disables event publishing.
type NSQConfig struct {
	Address        string
	LookupdAddress string
	Topic          string
	Channel        string
	MaxInFlight    int
	MaxAttempts    int
}

// NewRelicConfig contains APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int // megabytes
	MaxAge     int // days
	MaxBackups int
	Compress   bool
}

// LedgerConfig tunes the ledger core and reporting
type LedgerConfig struct {
	DebitMode         DebitMode
	RecentLimit       int
	DashboardCacheTTL int // seconds, 0 disables caching
	SessionTTL        int // seconds
}

// WebhookConfig tunes delivery of transaction events to user webhooks
type WebhookConfig struct {
	Timeout          int // seconds
	MaxRetries       int
	FailureThreshold int
	OpenTimeout      int // seconds a failing host is skipped
}
