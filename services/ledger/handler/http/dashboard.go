package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/ledger/internal/pkg/middleware"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/internal/utils"
)

// SessionCookie identifies a dashboard session
const SessionCookie = "ledger_session"

// DashboardResponse is the dashboard payload
type DashboardResponse struct {
	Stats            *models.DashboardStats `json:"stats"`
	RefreshInterval  int                    `json:"refresh_interval"`
	RefreshIntervals []int                  `json:"refresh_intervals"`
}

// Dashboard handles the dashboard view
func (h *LedgerHandler) Dashboard(c echo.Context) error {
	middleware.SetTransactionName(c, "Dashboard")
	ctx := c.Request().Context()

	stats, err := h.ledgerUC.DashboardStats(ctx)
	if err != nil {
		return respondError(c, err, "Failed to load dashboard")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", DashboardResponse{
		Stats:            stats,
		RefreshInterval:  h.sessionUC.RefreshInterval(ctx, sessionID(c)),
		RefreshIntervals: models.RefreshIntervals,
	})
}

// SetRefreshInterval stores the dashboard refresh period of the session
func (h *LedgerHandler) SetRefreshInterval(c echo.Context) error {
	middleware.SetTransactionName(c, "SetRefreshInterval")

	var req models.RefreshIntervalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.RefreshInterval == nil {
		return utils.BadRequestResponse(c, "field 'refresh_interval' is required")
	}

	if err := h.sessionUC.SetRefreshInterval(c.Request().Context(), sessionID(c), *req.RefreshInterval); err != nil {
		return respondError(c, err, "Failed to save refresh interval")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Refresh interval updated successfully",
		map[string]int{"refresh_interval": *req.RefreshInterval})
}

// sessionID returns the caller's session, issuing a cookie on first visit
func sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
