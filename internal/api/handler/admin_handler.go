package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
	"github.com/sonnasweet/ordering-system/internal/core/ports"
)

// AdminHandler owns the admin dashboard and user-management routes.
type AdminHandler struct {
	users ports.UserRepository
}

func NewAdminHandler(users ports.UserRepository) *AdminHandler {
	return &AdminHandler{users: users}
}

type dashboardData struct {
	TotalOrders    int64   `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalCustomers int64   `json:"totalCustomers"`
	RecentOrders   []any   `json:"recentOrders"`
}

// Dashboard returns admin dashboard data.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	customers, err := h.users.CountByRole(c.Request().Context(), domain.RoleCustomer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("", dashboardData{
		TotalCustomers: customers,
		RecentOrders:   []any{},
	}))
}

// ListUsers returns a page of user profiles.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int     false  "Page number"
// @Param        limit  query     int     false  "Page size"
// @Param        role   query     string  false  "Filter by role"
// @Success      200  {object}  response
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.users.FindAll(c.Request().Context(), page, limit, ports.UserFilter{
		Role: c.QueryParam("role"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("", result.Users))
}

type userStatusRequest struct {
	IsActive bool `json:"is_active"`
}

// UpdateUserStatus toggles a user's active flag.
//
// @Summary      Update user status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      userStatusRequest  true  "New status"
// @Success      200  {object}  response
// @Router       /admin/users/{id}/status [put]
func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	var req userStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ctx := c.Request().Context()
	user, err := h.users.FindByID(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	user.IsActive = req.IsActive
	if err := h.users.Update(ctx, user); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("User status updated successfully", nil))
}
