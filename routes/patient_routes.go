package routes

import (
	"dentadmin_back_end_go/auth"
	"dentadmin_back_end_go/provider"
	"dentadmin_back_end_go/services"

	"github.com/gin-gonic/gin"
)

func SetupPatientRoutes(r *gin.Engine, p *provider.Provider) {
	patients := r.Group("/api/v1/patients")
	patients.Use(auth.JwtAuthMiddleware())

	patients.GET("", func(c *gin.Context) {
		services.GetPatients(c, p)
	})

	patients.POST("", func(c *gin.Context) {
		services.CreatePatient(c, p)
	})

	patients.PUT("/:patientId", func(c *gin.Context) {
		services.UpdatePatient(c, p)
	})

	patients.DELETE("/:patientId", func(c *gin.Context) {
		services.DeletePatient(c, p)
	})
}
