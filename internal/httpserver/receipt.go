package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/castleclothing/storefront/internal/service"
	"github.com/castleclothing/storefront/internal/transport"
	"github.com/castleclothing/storefront/pkg/logging"
)

type ReceiptHTTP struct {
	Svc *service.ReceiptService
}

func (h *ReceiptHTTP) SendReceipt(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "receipt.send")

	var req transport.ReceiptRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("send_receipt_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidBody)
	}

	if err := h.Svc.Send(ctx, req); err != nil {
		l.Error("send_receipt_error", "status", 500, "reason", "mail relay failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgMailFailed)
	}

	l.Info("send_receipt_success", "to", req.Email)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: msgMailSent})
}
