package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alsyedgraphics/printshop-api/internal/application/service"
	"github.com/alsyedgraphics/printshop-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard and report HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles the dashboard summary request
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard summary retrieved successfully", summary)
}

// GetClientRevenue handles the per-client revenue report request
func (h *DashboardHandler) GetClientRevenue(c *gin.Context) {
	revenue, err := h.dashboardService.GetClientRevenue(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client revenue retrieved successfully", revenue)
}
