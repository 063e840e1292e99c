package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	ReceiptHandler *ReceiptHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/login", d.AuthHandler.Login)

	products := e.Group("/productos")
	products.GET("", d.CatalogHandler.ListProducts)
	products.POST("", d.CatalogHandler.CreateProduct)
	products.PUT("/:id", d.CatalogHandler.UpdateProduct)
	products.DELETE("/:id", d.CatalogHandler.DeleteProduct)

	e.POST("/enviar-correo", d.ReceiptHandler.SendReceipt)
}
