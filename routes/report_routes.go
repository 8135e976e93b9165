package routes

import (
	"dentadmin_back_end_go/auth"
	"dentadmin_back_end_go/provider"
	"dentadmin_back_end_go/services"

	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(r *gin.Engine, p *provider.Provider) {
	reports := r.Group("/api/v1")
	reports.Use(auth.JwtAuthMiddleware())

	reports.GET("/reports/summary", func(c *gin.Context) {
		services.GetReportSummary(c, p)
	})

	reports.GET("/calendar/day", func(c *gin.Context) {
		services.GetCalendarDay(c, p)
	})

	reports.GET("/calendar/upcoming", func(c *gin.Context) {
		services.GetUpcoming(c, p)
	})
}
