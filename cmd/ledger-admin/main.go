package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/piresc/ledger/internal/pkg/config"
	"github.com/piresc/ledger/internal/pkg/database"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/services/ledger"
	"github.com/piresc/ledger/services/ledger/gateway"
	"github.com/piresc/ledger/services/ledger/repository"
	"github.com/piresc/ledger/services/ledger/usecase"
	"github.com/shopspring/decimal"
)

const usage = `usage: ledger-admin [-config path] create-admin <balance> <commission_rate> <webhook_url>`

func main() {
	flags := flag.NewFlagSet("ledger-admin", flag.ExitOnError)
	configPath := flags.String("config", "config/ledger.env", "path to the env config file")
	flags.Usage = func() { fmt.Fprintln(flags.Output(), usage) }
	_ = flags.Parse(os.Args[1:])

	args, err := parseCreateAdmin(flags.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	configs := config.InitConfig(*configPath)
	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	if configs.Database.MigrateOnStart {
		if err := database.Migrate(postgresClient, configs.Database.Database); err != nil {
			zapLogger.Fatal("Failed to run migrations", logger.Err(err))
		}
	}

	ledgerUC, err := usecase.NewLedgerUC(configs,
		repository.NewLedgerRepository(configs, postgresClient.GetDB()),
		repository.NewReportRepository(postgresClient.GetDB()),
		repository.NoopStatsCache{},
		gateway.NewLedgerGW(nil, configs.NSQ.Topic))
	if err != nil {
		zapLogger.Fatal("Failed to initialize ledger use case", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	code := run(ctx, ledgerUC, args, os.Stdout, os.Stderr)
	cancel()

	// os.Exit skips deferred calls
	os.Exit(closeAll(code, os.Stderr, postgresClient, zapLogger))
}

// closeAll closes every resource in order and passes code through
func closeAll(code int, stderr io.Writer, closers ...io.Closer) int {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			fmt.Fprintf(stderr, "failed to release resource: %v\n", err)
		}
	}
	return code
}

type createAdminArgs struct {
	balance        decimal.Decimal
	commissionRate decimal.Decimal
	webhookURL     string
}

func parseCreateAdmin(args []string) (createAdminArgs, error) {
	if len(args) != 4 || args[0] != "create-admin" {
		return createAdminArgs{}, errors.New("expected the create-admin command with three arguments")
	}

	balance, err := decimal.NewFromString(args[1])
	if err != nil {
		return createAdminArgs{}, fmt.Errorf("invalid balance %q", args[1])
	}
	rate, err := decimal.NewFromString(args[2])
	if err != nil {
		return createAdminArgs{}, fmt.Errorf("invalid commission rate %q", args[2])
	}

	return createAdminArgs{balance: balance, commissionRate: rate, webhookURL: args[3]}, nil
}

// run provisions the administrator and returns the process exit code
func run(ctx context.Context, uc ledger.LedgerUC, args createAdminArgs, stdout, stderr io.Writer) int {
	id, err := uc.CreateAdmin(ctx, args.balance, args.commissionRate, args.webhookURL)
	switch {
	case err == nil:
		fmt.Fprintf(stdout, "admin user created with id %d\n", id)
		return 0
	case errors.Is(err, models.ErrConflict):
		fmt.Fprintf(stderr, "an admin with webhook %s already exists\n", args.webhookURL)
		return 1
	case errors.Is(err, models.ErrInvalidInput):
		fmt.Fprintln(stderr, err)
		return 2
	default:
		fmt.Fprintf(stderr, "failed to create admin: %v\n", err)
		return 1
	}
}
