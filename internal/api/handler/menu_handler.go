package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MenuHandler owns the menu routes. Menu management is not implemented yet;
// the routes exist so clients and the role gates have a stable surface.
type MenuHandler struct{}

func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// List returns all menu items.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Success      200  {object}  response
// @Router       /menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, ok("", []any{}))
}

// Create adds a menu item. Admin only.
//
// @Summary      Create menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  response
// @Router       /menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	return c.JSON(http.StatusCreated, ok("Menu item created successfully", map[string]any{}))
}

// Update modifies a menu item. Admin only.
//
// @Summary      Update menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Menu item id"
// @Success      200  {object}  response
// @Router       /menu/{id} [put]
func (h *MenuHandler) Update(c echo.Context) error {
	return c.JSON(http.StatusOK, ok("Menu item updated successfully", map[string]any{}))
}

// Delete removes a menu item. Admin only.
//
// @Summary      Delete menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Menu item id"
// @Success      200  {object}  response
// @Router       /menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	return c.JSON(http.StatusOK, ok("Menu item deleted successfully", nil))
}
