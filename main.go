package main

import (
	"context"
	"os"
	"time"

	"dentadmin_back_end_go/db"
	"dentadmin_back_end_go/provider"
	"dentadmin_back_end_go/routes"
	"dentadmin_back_end_go/services"
	"dentadmin_back_end_go/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	r := gin.Default()

	config := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(config))

	// Initialize database
	conn, err := db.InitDatabase()
	if err != nil {
		logger.Fatalf("Failed to connect to the database: %v", err)
	}
	defer conn.Close()

	pgStore := store.NewPgStore(conn)
	dataProvider := provider.New(pgStore, logger)

	// The dashboard keeps working on an empty state if the first load
	// fails; POST /api/v1/dashboard/reload retries it manually.
	if err := dataProvider.Load(context.Background()); err != nil {
		logger.Errorf("Initial dashboard load failed: %v", err)
	}

	hub := services.NewNotifyHub()
	dataProvider.OnChange(hub.BroadcastRefresh)
	r.GET("/ws", hub.ServeWs)

	// Initialize routes
	routes.SetupAuthRoutes(r, conn)
	routes.SetupPatientRoutes(r, dataProvider)
	routes.SetupDoctorRoutes(r, dataProvider)
	routes.SetupAppointmentRoutes(r, dataProvider)
	routes.SetupReportRoutes(r, dataProvider)
	routes.SetupDashboardRoutes(r, dataProvider)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	// Start server
	r.Run(":" + port)
}
