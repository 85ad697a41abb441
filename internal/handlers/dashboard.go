package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifedesk/lifedesk-api/internal/services"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
	}
}

// GetSummary returns the derived dashboard figures
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Summary())
}
