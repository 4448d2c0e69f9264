package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ledger/internal/pkg/middleware"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/internal/utils"
)

// CreateTransaction handles transaction creation requests
func (h *LedgerHandler) CreateTransaction(c echo.Context) error {
	middleware.SetTransactionName(c, "CreateTransaction")

	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	id, err := h.ledgerUC.CreateTransaction(c.Request().Context(), req.UserID, req.Amount)
	if err != nil {
		return respondError(c, err, "Failed to create transaction")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully",
		map[string]int64{"transaction_id": id})
}

// UpdateTransactionStatus handles status changes of a pending transaction
func (h *LedgerHandler) UpdateTransactionStatus(c echo.Context) error {
	middleware.SetTransactionName(c, "UpdateTransactionStatus")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.UpdateTransactionStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	status, err := models.ParseTransactionStatus(req.Status)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.ledgerUC.UpdateTransactionStatus(c.Request().Context(), id, status); err != nil {
		return respondError(c, err, "Failed to update transaction status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction status updated successfully",
		map[string]interface{}{"transaction_id": id, "status": status})
}

// CancelTransaction handles direct cancellation requests
func (h *LedgerHandler) CancelTransaction(c echo.Context) error {
	middleware.SetTransactionName(c, "CancelTransaction")

	var req models.CancelTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.ledgerUC.CancelTransaction(c.Request().Context(), req.TransactionID); err != nil {
		return respondError(c, err, "Failed to cancel transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction canceled successfully",
		map[string]int64{"transaction_id": req.TransactionID})
}

// GetTransaction handles transaction retrieval by path id
func (h *LedgerHandler) GetTransaction(c echo.Context) error {
	middleware.SetTransactionName(c, "GetTransaction")
	return h.getTransaction(c, c.Param("id"))
}

// CheckTransaction handles transaction retrieval by query parameter
func (h *LedgerHandler) CheckTransaction(c echo.Context) error {
	middleware.SetTransactionName(c, "CheckTransaction")
	return h.getTransaction(c, c.QueryParam("transaction_id"))
}

func (h *LedgerHandler) getTransaction(c echo.Context, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	trx, err := h.ledgerUC.GetTransaction(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to retrieve transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", trx)
}

// ListTransactions handles listing of every transaction
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	middleware.SetTransactionName(c, "ListTransactions")

	transactions, err := h.ledgerUC.ListTransactions(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to list transactions")
	}
	if transactions == nil {
		transactions = []*models.Transaction{}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", transactions)
}
