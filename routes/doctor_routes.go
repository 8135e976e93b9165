package routes

import (
	"dentadmin_back_end_go/auth"
	"dentadmin_back_end_go/provider"
	"dentadmin_back_end_go/services"

	"github.com/gin-gonic/gin"
)

func SetupDoctorRoutes(r *gin.Engine, p *provider.Provider) {
	doctors := r.Group("/api/v1/doctors")
	doctors.Use(auth.JwtAuthMiddleware())

	doctors.GET("", func(c *gin.Context) {
		services.GetDoctors(c, p)
	})

	doctors.GET("/specialties", services.GetSpecialties)

	doctors.POST("", func(c *gin.Context) {
		services.CreateDoctor(c, p)
	})

	doctors.PUT("/:doctorId", func(c *gin.Context) {
		services.UpdateDoctor(c, p)
	})

	doctors.DELETE("/:doctorId", func(c *gin.Context) {
		services.DeleteDoctor(c, p)
	})
}
