package health

import (
	"context"

	"github.com/piresc/ledger/internal/pkg/database"
)

// PostgresChecker pings the ledger database
func PostgresChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		return client.Ping(ctx)
	})
}

// RedisChecker pings Redis. A nil client means Redis is not configured.
func RedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		return client.GetClient().Ping(ctx).Err()
	})
}

// Pinger is anything able to check its connection, such as the NSQ producer
type Pinger interface {
	Ping() error
}

// PingChecker wraps a Pinger
func PingChecker(p Pinger) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if p == nil {
			return nil
		}
		return p.Ping()
	})
}
