package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the env file at configPath (local
// environment only) and from process environment variables.
func InitConfig(configPath string) *models.Config {
	v := newViper()

	if env := strings.ToLower(os.Getenv("APP_ENV")); env == "" || env == "local" {
		if configPath != "" {
			v.SetConfigFile(configPath)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					log.Println("error loading config from file", err)
				}
			}
		}
	}

	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "ledger-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)
	v.SetDefault("DB_MIGRATE_ON_START", true)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_TOPIC", constants.TopicTransactionEvents)
	v.SetDefault("NSQ_CHANNEL", constants.ChannelWebhookNotifier)
	v.SetDefault("NSQ_MAX_IN_FLIGHT", 10)
	v.SetDefault("NSQ_MAX_ATTEMPTS", 5)

	v.SetDefault("WEBHOOK_TIMEOUT", 10)
	v.SetDefault("WEBHOOK_MAX_RETRIES", 3)
	v.SetDefault("WEBHOOK_FAILURE_THRESHOLD", 5)
	v.SetDefault("WEBHOOK_OPEN_TIMEOUT", 60)

	v.SetDefault("NEW_RELIC_APP_NAME", "ledger-service")
	v.SetDefault("NEW_RELIC_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
	v.SetDefault("LOG_MAX_SIZE", 100)
	v.SetDefault("LOG_MAX_AGE", 7)
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_COMPRESS", true)

	v.SetDefault("LEDGER_DEBIT_MODE", string(models.DebitModeDouble))
	v.SetDefault("LEDGER_RECENT_LIMIT", 5)
	v.SetDefault("DASHBOARD_CACHE_TTL", 0)
	v.SetDefault("SESSION_TTL", 86400)

	return v
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.MigrateOnStart = v.GetBool("DB_MIGRATE_ON_START")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQD_ADDRESS")
	configs.NSQ.LookupdAddress = v.GetString("NSQLOOKUPD_ADDRESS")
	configs.NSQ.Topic = v.GetString("NSQ_TOPIC")
	configs.NSQ.Channel = v.GetString("NSQ_CHANNEL")
	configs.NSQ.MaxInFlight = v.GetInt("NSQ_MAX_IN_FLIGHT")
	configs.NSQ.MaxAttempts = v.GetInt("NSQ_MAX_ATTEMPTS")

	// Webhook config
	configs.Webhook.Timeout = v.GetInt("WEBHOOK_TIMEOUT")
	configs.Webhook.MaxRetries = v.GetInt("WEBHOOK_MAX_RETRIES")
	configs.Webhook.FailureThreshold = v.GetInt("WEBHOOK_FAILURE_THRESHOLD")
	configs.Webhook.OpenTimeout = v.GetInt("WEBHOOK_OPEN_TIMEOUT")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.MaxSize = v.GetInt("LOG_MAX_SIZE")
	configs.Logger.MaxAge = v.GetInt("LOG_MAX_AGE")
	configs.Logger.MaxBackups = v.GetInt("LOG_MAX_BACKUPS")
	configs.Logger.Compress = v.GetBool("LOG_COMPRESS")

	// Ledger config
	mode, err := models.ParseDebitMode(v.GetString("LEDGER_DEBIT_MODE"))
	if err != nil {
		log.Printf("Warning: %v, using default: %s", err, models.DebitModeDouble)
		mode = models.DebitModeDouble
	}
	configs.Ledger.DebitMode = mode
	configs.Ledger.RecentLimit = v.GetInt("LEDGER_RECENT_LIMIT")
	if configs.Ledger.RecentLimit <= 0 {
		configs.Ledger.RecentLimit = 5
	}
	configs.Ledger.DashboardCacheTTL = v.GetInt("DASHBOARD_CACHE_TTL")
	configs.Ledger.SessionTTL = v.GetInt("SESSION_TTL")

	return configs
}
