package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ledger/internal/pkg/middleware"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/internal/utils"
)

// CreateUser handles user creation requests
func (h *LedgerHandler) CreateUser(c echo.Context) error {
	middleware.SetTransactionName(c, "CreateUser")

	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	id, err := h.ledgerUC.CreateUser(c.Request().Context(), req.Balance, req.CommissionRate, req.WebhookURL)
	if err != nil {
		return respondError(c, err, "Failed to create user")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully",
		map[string]int64{"user_id": id})
}

// ListUsers handles listing of every user
func (h *LedgerHandler) ListUsers(c echo.Context) error {
	middleware.SetTransactionName(c, "ListUsers")

	users, err := h.ledgerUC.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to list users")
	}
	if users == nil {
		users = []*models.User{}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", users)
}

// DeleteUser handles user deletion, cascading to the user's transactions
func (h *LedgerHandler) DeleteUser(c echo.Context) error {
	middleware.SetTransactionName(c, "DeleteUser")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.ledgerUC.DeleteUser(c.Request().Context(), id); err != nil {
		return respondError(c, err, "Failed to delete user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User deleted successfully",
		map[string]int64{"user_id": id})
}
