package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/shopspring/decimal"
)

var maxCommissionRate = decimal.NewFromInt(1)

// CreateUser provisions a regular user
func (uc *ledgerUC) CreateUser(ctx context.Context, balance, commissionRate decimal.Decimal, webhookURL string) (int64, error) {
	user, err := newUser(balance, commissionRate, webhookURL, models.UserRoleUser)
	if err != nil {
		return 0, err
	}

	id, err := uc.repo.CreateUser(ctx, user)
	if err != nil {
		return 0, err
	}

	logger.InfoCtx(ctx, "User created", logger.UserID(id))
	uc.afterWrite(ctx, nil)
	return id, nil
}

// CreateAdmin provisions an administrator. A webhook is mandatory and may
// not be shared with any existing user.
func (uc *ledgerUC) CreateAdmin(ctx context.Context, balance, commissionRate decimal.Decimal, webhookURL string) (int64, error) {
	if strings.TrimSpace(webhookURL) == "" {
		return 0, fmt.Errorf("%w: webhook_url is required for administrators", models.ErrInvalidInput)
	}
	user, err := newUser(balance, commissionRate, webhookURL, models.UserRoleAdmin)
	if err != nil {
		return 0, err
	}

	inUse, err := uc.repo.WebhookInUse(ctx, user.Webhook())
	if err != nil {
		return 0, err
	}
	if inUse {
		return 0, fmt.Errorf("%w: webhook %s is already registered", models.ErrConflict, user.Webhook())
	}

	id, err := uc.repo.CreateUser(ctx, user)
	if err != nil {
		return 0, err
	}

	logger.InfoCtx(ctx, "Administrator created", logger.UserID(id))
	uc.afterWrite(ctx, nil)
	return id, nil
}

// ListUsers returns every user ordered by id
func (uc *ledgerUC) ListUsers(ctx context.Context) ([]*models.User, error) {
	return uc.repo.ListUsers(ctx)
}

// DeleteUser removes a user and, through the foreign key, its transactions
func (uc *ledgerUC) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: user_id must be a positive number", models.ErrInvalidInput)
	}
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "User deleted", logger.UserID(id))
	uc.afterWrite(ctx, nil)
	return nil
}

func newUser(balance, commissionRate decimal.Decimal, webhookURL string, role models.UserRole) (*models.User, error) {
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance must not be negative", models.ErrInvalidInput)
	}
	if !models.FitsAmountColumn(balance) {
		return nil, fmt.Errorf("%w: balance must be below 10^12 with at most %d decimal places", models.ErrInvalidInput, models.AmountScale)
	}
	if commissionRate.IsNegative() || commissionRate.GreaterThan(maxCommissionRate) {
		return nil, fmt.Errorf("%w: commission_rate must be between 0 and 1", models.ErrInvalidInput)
	}
	if !models.FitsAmountColumn(commissionRate) {
		return nil, fmt.Errorf("%w: commission_rate allows at most %d decimal places", models.ErrInvalidInput, models.AmountScale)
	}

	user := &models.User{
		Balance:        balance,
		CommissionRate: commissionRate,
		Role:           role,
	}
	if webhookURL = strings.TrimSpace(webhookURL); webhookURL != "" {
		u, err := url.ParseRequestURI(webhookURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: webhook_url must be an http(s) URL", models.ErrInvalidInput)
		}
		user.WebhookURL = &webhookURL
	}
	return user, nil
}
