package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ledger/internal/pkg/circuitbreaker"
	"github.com/piresc/ledger/internal/pkg/config"
	"github.com/piresc/ledger/internal/pkg/health"
	httppkg "github.com/piresc/ledger/internal/pkg/http"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/middleware"
	nrpkg "github.com/piresc/ledger/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/ledger/internal/pkg/nsq"
	"github.com/piresc/ledger/internal/pkg/retry"
	"github.com/piresc/ledger/internal/pkg/server"
	"github.com/piresc/ledger/internal/utils"
	"github.com/piresc/ledger/services/notifier/gateway"
	nsqHandler "github.com/piresc/ledger/services/notifier/handler/nsq"
	"github.com/piresc/ledger/services/notifier/usecase"
)

func main() {
	appName := "ledger-notifier"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/ledger.env"
	}
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("topic", configs.NSQ.Topic),
		logger.String("channel", configs.NSQ.Channel),
	)

	if configs.NSQ.Address == "" && configs.NSQ.LookupdAddress == "" {
		zapLogger.Fatal("NSQD_ADDRESS or NSQLOOKUPD_ADDRESS is required")
	}

	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = configs.Webhook.MaxRetries

	breakerConfig := circuitbreaker.DefaultConfig()
	breakerConfig.FailureThreshold = configs.Webhook.FailureThreshold
	breakerConfig.OpenTimeout = time.Duration(configs.Webhook.OpenTimeout) * time.Second

	webhookClient := httppkg.NewWebhookClient(httppkg.Config{
		Timeout: time.Duration(configs.Webhook.Timeout) * time.Second,
		Retry:   retryConfig,
		Breaker: breakerConfig,
	}, zapLogger)

	notifierUC := usecase.NewNotifierUC(gateway.NewWebhookGateway(webhookClient))
	eventHandler := nsqHandler.NewEventHandler(notifierUC)

	consumer, err := nsqpkg.NewConsumer(nsqpkg.ConsumerConfig{
		Topic:          configs.NSQ.Topic,
		Channel:        configs.NSQ.Channel,
		NSQDAddress:    configs.NSQ.Address,
		LookupdAddress: configs.NSQ.LookupdAddress,
		MaxInFlight:    configs.NSQ.MaxInFlight,
		MaxAttempts:    configs.NSQ.MaxAttempts,
	}, eventHandler.HandleTransactionEvent)
	if err != nil {
		zapLogger.Fatal("Failed to start NSQ consumer", logger.Err(err))
	}

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(context.Context) error {
		consumer.Stop()
		return nil
	})

	// Health and breaker state
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	health.RegisterHealthEndpoints(e, appName, nil)
	e.GET("/breakers", func(c echo.Context) error {
		return utils.SuccessResponse(c, http.StatusOK, "Circuit breaker states", webhookClient.BreakerStates())
	})

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
