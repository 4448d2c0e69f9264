package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/middleware"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/internal/utils"
)

// respondError maps ledger errors onto the response envelope. Store
// failures are logged and answered with a fixed message.
func respondError(c echo.Context, err error, failure string) error {
	var fundsErr *models.InsufficientFundsError
	switch {
	case errors.As(err, &fundsErr):
		return utils.UnprocessableEntityResponse(c, models.ErrInsufficientFunds.Error(),
			map[string]int64{"transaction_id": fundsErr.TransactionID})
	case errors.Is(err, models.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrUserNotFound), errors.Is(err, models.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrInvalidTransition), errors.Is(err, models.ErrConflict):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, models.ErrInsufficientBalance):
		return utils.UnprocessableEntityResponse(c, err.Error(), nil)
	}

	middleware.NoticeError(c, err)
	logger.ErrorCtx(c.Request().Context(), failure,
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.ErrorResponseHandler(c, http.StatusInternalServerError, failure)
}
