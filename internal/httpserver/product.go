package httpserver

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/castleclothing/storefront/internal/service"
	"github.com/castleclothing/storefront/internal/transport"
	"github.com/castleclothing/storefront/pkg/logging"
)

const imageField = "imagen"

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// formImage returns the uploaded image, or nil when the request carries none.
func formImage(c echo.Context) *multipart.FileHeader {
	fh, err := c.FormFile(imageField)
	if err != nil {
		return nil
	}
	return fh
}

func openImage(fh *multipart.FileHeader) (*service.Image, multipart.File, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &service.Image{Filename: fh.Filename, Body: src}, src, nil
}

func bindForm(c echo.Context, l *slog.Logger, op string) (transport.ProductForm, error) {
	var req transport.ProductForm
	if err := c.Bind(&req); err != nil {
		l.Warn(op, "status", 400, "reason", "invalid body", "error", err)
		return req, echo.NewHTTPError(http.StatusBadRequest, msgInvalidBody)
	}
	return req, nil
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	items, err := h.Svc.ListProducts(ctx)
	if err != nil {
		l.Error("list_products_error", "status", 500, "reason", "cannot read products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgListFailed)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	fh := formImage(c)
	if fh == nil {
		l.Warn("product_create_error", "status", 400, "reason", "missing image")
		return echo.NewHTTPError(http.StatusBadRequest, msgMissingImage)
	}

	req, err := bindForm(c, l, "product_create_error")
	if err != nil {
		return err
	}

	img, src, err := openImage(fh)
	if err != nil {
		l.Error("product_create_error", "status", 500, "reason", "cannot open upload", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgCreateFailed)
	}
	defer src.Close()

	prod, err := h.Svc.CreateProduct(ctx, req, img)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingImage):
			l.Warn("product_create_error", "status", 400, "reason", "missing image")
			return echo.NewHTTPError(http.StatusBadRequest, msgMissingImage)
		case errors.Is(err, service.ErrValidation):
			l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, msgInvalidBody)
		default:
			l.Error("product_create_error", "status", 500, "reason", "cannot create product", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, msgCreateFailed)
		}
	}

	l.Info("create_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: msgCreated, ImageURL: prod.ImageURL})
}

func (h *CatalogHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, ok := parseID(c)
	if !ok {
		l.Warn("product_update_error", "status", 404, "reason", "id is not a product id", "id", c.Param("id"))
		return echo.NewHTTPError(http.StatusNotFound, msgProductNotFound)
	}

	req, err := bindForm(c, l, "product_update_error")
	if err != nil {
		return err
	}

	var img *service.Image
	if fh := formImage(c); fh != nil {
		var src multipart.File
		img, src, err = openImage(fh)
		if err != nil {
			l.Error("product_update_error", "status", 500, "reason", "cannot open upload", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, msgUpdateFailed)
		}
		defer src.Close()
	}

	prod, err := h.Svc.UpdateProduct(ctx, id, req, img)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("product_update_error", "status", 404, "reason", "product not found", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, msgProductNotFound)
		case errors.Is(err, service.ErrValidation):
			l.Warn("product_update_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, msgInvalidBody)
		default:
			l.Error("product_update_error", "status", 500, "reason", "cannot update product", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, msgUpdateFailed)
		}
	}

	l.Info("update_product_success", "product_id", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: msgUpdated, ImageURL: prod.ImageURL})
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, ok := parseID(c)
	if !ok {
		l.Warn("product_delete_error", "status", 404, "reason", "id is not a product id", "id", c.Param("id"))
		return echo.NewHTTPError(http.StatusNotFound, msgProductNotFound)
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("product_delete_error", "status", 404, "reason", "product not found", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, msgProductNotFound)
		}
		l.Error("product_delete_error", "status", 500, "reason", "cannot delete product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgDeleteFailed)
	}

	l.Info("delete_product_success", "product_id", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: msgDeleted})
}
