package routes

import (
	"dentadmin_back_end_go/auth"
	"dentadmin_back_end_go/provider"
	"dentadmin_back_end_go/services"

	"github.com/gin-gonic/gin"
)

func SetupDashboardRoutes(r *gin.Engine, p *provider.Provider) {
	dashboard := r.Group("/api/v1/dashboard")
	dashboard.Use(auth.JwtAuthMiddleware())

	dashboard.GET("/stats", func(c *gin.Context) {
		services.GetStats(c, p)
	})

	dashboard.POST("/reload", func(c *gin.Context) {
		services.ReloadDashboard(c, p)
	})
}
