package admin

import (
	"github.com/ikay-store/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboard 后台总览
func (h *Handler) GetDashboard(c *gin.Context) {
	stats, err := h.DashboardService.Stats()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load dashboard", err)
		return
	}
	response.Success(c, gin.H{"stats": stats})
}
