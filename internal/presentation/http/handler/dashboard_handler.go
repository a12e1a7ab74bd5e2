package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/temple-billing/internal/application/service"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/request"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles getting dashboard statistics
func (h *DashboardHandler) GetStats(c *gin.Context) {
	var q request.DashboardQuery
	_ = c.ShouldBindQuery(&q)

	stats, err := h.dashboardService.GetStats(c.Request.Context(), &service.DashboardInput{
		Username: GetUsername(c),
		Range:    q.Range,
		Start:    q.Start,
		End:      q.End,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
