package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler owns the analytics routes. Aggregation is not
// implemented yet; the shape is fixed so the admin frontend can bind to it.
type AnalyticsHandler struct{}

func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

type analyticsData struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalOrders    int64   `json:"totalOrders"`
	TotalCustomers int64   `json:"totalCustomers"`
	PopularItems   []any   `json:"popularItems"`
	SalesTrend     []any   `json:"salesTrend"`
}

// Dashboard returns analytics dashboard data. Admin only.
//
// @Summary      Analytics dashboard
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Router       /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, ok("", analyticsData{
		PopularItems: []any{},
		SalesTrend:   []any{},
	}))
}
