package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// OrderHandler owns the order routes. Order processing is not implemented
// yet; see MenuHandler for the same arrangement.
type OrderHandler struct{}

func NewOrderHandler() *OrderHandler {
	return &OrderHandler{}
}

// List returns the caller's orders (all orders for admins).
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, ok("", []any{}))
}

// Create places a new order.
//
// @Summary      Create order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  response
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	return c.JSON(http.StatusCreated, ok("Order created successfully", map[string]any{}))
}
