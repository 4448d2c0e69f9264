package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ledger/internal/pkg/config"
	"github.com/piresc/ledger/internal/pkg/database"
	"github.com/piresc/ledger/internal/pkg/health"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/middleware"
	nrpkg "github.com/piresc/ledger/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/ledger/internal/pkg/nsq"
	"github.com/piresc/ledger/internal/pkg/server"
	"github.com/piresc/ledger/internal/utils"
	"github.com/piresc/ledger/services/ledger"
	"github.com/piresc/ledger/services/ledger/gateway"
	"github.com/piresc/ledger/services/ledger/handler"
	httpHandler "github.com/piresc/ledger/services/ledger/handler/http"
	"github.com/piresc/ledger/services/ledger/repository"
	"github.com/piresc/ledger/services/ledger/usecase"
)

func main() {
	appName := "ledger-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/ledger.env"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("debit_mode", string(configs.Ledger.DebitMode)),
	)

	shutdown := server.NewShutdownManager(zapLogger)
	checkers := map[string]health.Checker{}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register(func(context.Context) error { return postgresClient.Close() })
	checkers["postgres"] = health.PostgresChecker(postgresClient)

	if configs.Database.MigrateOnStart {
		if err := database.Migrate(postgresClient, configs.Database.Database); err != nil {
			zapLogger.Fatal("Failed to run migrations", logger.Err(err))
		}
	}

	// Redis backs the dashboard cache and session preferences when configured
	var (
		statsCache  ledger.StatsCache  = repository.NoopStatsCache{}
		sessionRepo ledger.SessionRepo = repository.NewMemorySessionRepository()
	)
	if configs.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdown.Register(func(context.Context) error { return redisClient.Close() })
		checkers["redis"] = health.RedisChecker(redisClient)

		if ttl := configs.Ledger.DashboardCacheTTL; ttl > 0 {
			statsCache = repository.NewStatsCache(redisClient.GetClient(), time.Duration(ttl)*time.Second)
		}
		sessionRepo = repository.NewSessionRepository(redisClient.GetClient(),
			time.Duration(configs.Ledger.SessionTTL)*time.Second)
	} else {
		zapLogger.Warn("Redis not configured, using in-process session store")
	}

	// NSQ carries transaction events to the webhook notifier when configured
	var producer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdown.Register(func(context.Context) error {
			producer.Stop()
			return nil
		})
		checkers["nsq"] = health.PingChecker(producer)
	} else {
		zapLogger.Warn("NSQ not configured, transaction events are not published")
	}

	// Initialize repositories
	ledgerRepo := repository.NewLedgerRepository(configs, postgresClient.GetDB())
	reportRepo := repository.NewReportRepository(postgresClient.GetDB())

	// Initialize Gateway
	ledgerGW := gateway.NewLedgerGW(producer, configs.NSQ.Topic)

	// Initialize UseCase
	ledgerUC, err := usecase.NewLedgerUC(configs, ledgerRepo, reportRepo, statsCache, ledgerGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ledger use case", logger.Err(err))
	}
	sessionUC := usecase.NewSessionUC(sessionRepo)

	// Initialize handlers
	Handler := handler.NewHandler(httpHandler.NewLedgerHandler(ledgerUC, sessionUC))

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.NewRelicMiddleware(nrApp))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, checkers)

	// Register service routes
	Handler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		zapLogger.Error("Shutdown completed with errors", logger.Err(err))
	}
	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}
}
