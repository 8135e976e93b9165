package routes

import (
	"dentadmin_back_end_go/auth"
	"dentadmin_back_end_go/provider"
	"dentadmin_back_end_go/services"

	"github.com/gin-gonic/gin"
)

func SetupAppointmentRoutes(r *gin.Engine, p *provider.Provider) {
	appointments := r.Group("/api/v1/appointments")
	appointments.Use(auth.JwtAuthMiddleware())

	appointments.GET("", func(c *gin.Context) {
		services.GetAppointments(c, p)
	})

	appointments.GET("/types", services.GetAppointmentTypes)

	appointments.POST("", func(c *gin.Context) {
		services.CreateAppointment(c, p)
	})

	appointments.PUT("/:appointmentId", func(c *gin.Context) {
		services.UpdateAppointment(c, p)
	})

	appointments.DELETE("/:appointmentId", func(c *gin.Context) {
		services.DeleteAppointment(c, p)
	})
}
