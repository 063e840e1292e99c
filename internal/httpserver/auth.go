package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/castleclothing/storefront/internal/service"
	"github.com/castleclothing/storefront/internal/transport"
	"github.com/castleclothing/storefront/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "missing fields", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidBody)
	}

	if err := h.Svc.Login(ctx, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("login_failed", "status", 400, "reason", "missing fields", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, msgInvalidBody)
		case errors.Is(err, service.ErrNotFound):
			l.Warn("login_failed", "status", 400, "reason", "user not found", "username", req.Username)
			return echo.NewHTTPError(http.StatusBadRequest, msgUserNotFound)
		case errors.Is(err, service.ErrInvalidCredential):
			l.Warn("login_failed", "status", 400, "reason", "wrong password", "username", req.Username)
			return echo.NewHTTPError(http.StatusBadRequest, msgWrongPassword)
		default:
			l.Error("login_failed", "status", 500, "reason", "store error", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, msgServerError)
		}
	}

	l.Info("login_successful", "username", req.Username)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: msgLoggedIn})
}
