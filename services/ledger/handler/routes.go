package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ledger/services/ledger/handler/http"
)

// Handler coordinates all protocol handlers for the ledger service
type Handler struct {
	ledgerHandler *http.LedgerHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(ledgerHandler *http.LedgerHandler) *Handler {
	return &Handler{
		ledgerHandler: ledgerHandler,
	}
}

// RegisterRoutes registers all routes for the ledger service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.ledgerHandler.Dashboard)
	e.GET("/dashboard", h.ledgerHandler.Dashboard)
	e.POST("/set_refresh_interval", h.ledgerHandler.SetRefreshInterval)

	users := e.Group("/users")
	users.GET("", h.ledgerHandler.ListUsers)
	users.POST("", h.ledgerHandler.CreateUser)
	users.POST("/:id/delete", h.ledgerHandler.DeleteUser)
	users.DELETE("/:id", h.ledgerHandler.DeleteUser)

	transactions := e.Group("/transactions")
	transactions.GET("", h.ledgerHandler.ListTransactions)
	transactions.GET("/:id", h.ledgerHandler.GetTransaction)
	transactions.POST("/:id", h.ledgerHandler.UpdateTransactionStatus)

	e.POST("/create_transaction", h.ledgerHandler.CreateTransaction)
	e.POST("/cancel_transaction", h.ledgerHandler.CancelTransaction)
	e.GET("/check_transaction", h.ledgerHandler.CheckTransaction)
}
