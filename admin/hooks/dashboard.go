package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/services"
)

// DashboardSummary returns the headline counts for the dashboard
func DashboardSummary(dashboardService *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := dashboardService.GetSummary()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
