package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sonnasweet/ordering-system/internal/core/ports"
)

// UserHandler owns the top-level user listing route.
type UserHandler struct {
	users ports.UserRepository
}

func NewUserHandler(users ports.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// List returns a page of user profiles. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200  {object}  response
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.users.FindAll(c.Request().Context(), page, limit, ports.UserFilter{})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("", result.Users))
}
