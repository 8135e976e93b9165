package routes

import (
	"dentadmin_back_end_go/auth"
	"dentadmin_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupAuthRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.POST("/api/v1/auth/register", func(c *gin.Context) {
		services.RegisterUser(c, pool)
	})

	r.GET("/api/v1/auth/activate", func(c *gin.Context) {
		services.ActivateAccount(c, pool)
	})

	r.POST("/api/v1/auth/login", func(c *gin.Context) {
		services.LoginUser(c, pool)
	})

	protected := r.Group("/api/v1/auth")
	protected.Use(auth.JwtAuthMiddleware())

	protected.POST("/logout", services.LogoutUser)

	protected.GET("/me", func(c *gin.Context) {
		services.GetCurrentUser(c, pool)
	})

	protected.PUT("/profile", func(c *gin.Context) {
		services.UpdateProfile(c, pool)
	})
}
