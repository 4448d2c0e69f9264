package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func fastConfig(maxRetries int) Config {
	return Config{MaxRetries: maxRetries, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}
}

func TestRetrier_Execute(t *testing.T) {
	nop := logger.NewFromZap(zap.NewNop())
	errTemp := errors.New("503 from webhook")

	tests := []struct {
		name      string
		failures  int
		permanent bool
		wantCalls int
		wantErr   bool
	}{
		{name: "first try", failures: 0, wantCalls: 1},
		{name: "succeeds after retries", failures: 2, wantCalls: 3},
		{name: "exhausts budget", failures: 10, wantCalls: 4, wantErr: true},
		{name: "permanent stops early", failures: 10, permanent: true, wantCalls: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := New(fastConfig(3), nop).Execute(context.Background(), func(ctx context.Context) error {
				calls++
				if calls <= tt.failures {
					if tt.permanent {
						return Permanent(errTemp)
					}
					return errTemp
				}
				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				assert.ErrorIs(t, err, errTemp)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetrier_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := NewWithDefaults(logger.NewFromZap(zap.NewNop())).Execute(ctx, func(ctx context.Context) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestRetrier_DelayIsCapped(t *testing.T) {
	r := New(Config{BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2}, logger.NewFromZap(zap.NewNop()))
	assert.Equal(t, time.Second, r.delay(0))
	assert.Equal(t, 2*time.Second, r.delay(1))
	assert.Equal(t, 3*time.Second, r.delay(5))
}

func TestPermanent(t *testing.T) {
	assert.Nil(t, Permanent(nil))
	base := errors.New("410 gone")
	err := Permanent(base)
	assert.True(t, IsPermanent(err))
	assert.ErrorIs(t, err, base)
	assert.False(t, IsPermanent(base))
}
