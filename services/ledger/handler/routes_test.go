package handler

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	handlerhttp "github.com/piresc/ledger/services/ledger/handler/http"
	"github.com/piresc/ledger/services/ledger/mocks"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewHandler(handlerhttp.NewLedgerHandler(mocks.NewMockLedgerUC(ctrl), mocks.NewMockSessionUC(ctrl)))

	e := echo.New()
	h.RegisterRoutes(e)

	var got []string
	for _, r := range e.Routes() {
		got = append(got, r.Method+" "+r.Path)
	}

	want := []string{
		http.MethodDelete + " /users/:id",
		http.MethodGet + " /",
		http.MethodGet + " /check_transaction",
		http.MethodGet + " /dashboard",
		http.MethodGet + " /transactions",
		http.MethodGet + " /transactions/:id",
		http.MethodGet + " /users",
		http.MethodPost + " /cancel_transaction",
		http.MethodPost + " /create_transaction",
		http.MethodPost + " /set_refresh_interval",
		http.MethodPost + " /transactions/:id",
		http.MethodPost + " /users",
		http.MethodPost + " /users/:id/delete",
	}
	for _, route := range want {
		assert.Contains(t, got, route)
	}
}
