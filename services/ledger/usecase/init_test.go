package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/services/ledger"
	"github.com/piresc/ledger/services/ledger/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	repo   *mocks.MockLedgerRepo
	tx     *mocks.MockTxRepo
	report *mocks.MockReportRepo
	cache  *mocks.MockStatsCache
	gw     *mocks.MockLedgerGW
}

func newTestUC(t *testing.T, mode models.DebitMode) (*ledgerUC, *testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		repo:   mocks.NewMockLedgerRepo(ctrl),
		tx:     mocks.NewMockTxRepo(ctrl),
		report: mocks.NewMockReportRepo(ctrl),
		cache:  mocks.NewMockStatsCache(ctrl),
		gw:     mocks.NewMockLedgerGW(ctrl),
	}
	cfg := &models.Config{Ledger: models.LedgerConfig{DebitMode: mode, RecentLimit: 5}}

	uc, err := NewLedgerUC(cfg, deps.repo, deps.report, deps.cache, deps.gw)
	require.NoError(t, err)
	impl := uc.(*ledgerUC)
	impl.now = func() time.Time { return fixedNow }
	return impl, deps
}

// expectAtomic runs the callback against the tx mock and returns its error,
// mirroring commit on nil and rollback otherwise
func (d *testDeps) expectAtomic() {
	d.repo.EXPECT().Atomic(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(ledger.TxRepo) error) error {
			return fn(d.tx)
		})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type decimalMatcher struct{ want decimal.Decimal }

// decEq matches decimals by value regardless of exponent
func decEq(s string) gomock.Matcher {
	return decimalMatcher{want: dec(s)}
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return fmt.Sprintf("is decimal %s", m.want)
}

func testUser(balance, rate string) *models.User {
	webhook := "https://hooks.example.com/u1"
	return &models.User{
		ID:             1,
		Balance:        dec(balance),
		CommissionRate: dec(rate),
		WebhookURL:     &webhook,
		Role:           models.UserRoleUser,
	}
}

func pendingTrx(amount, commission string) *models.Transaction {
	return &models.Transaction{
		ID:         7,
		Amount:     dec(amount),
		Commission: dec(commission),
		Status:     models.TransactionStatusPending,
		CreatedAt:  fixedNow,
		UserID:     1,
	}
}
