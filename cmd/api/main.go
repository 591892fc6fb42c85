package main

import (
	"fmt"
	"log"

	"traffic-management-api/config"
	"traffic-management-api/handlers"
	"traffic-management-api/middleware"
	"traffic-management-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql db handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	cache, err := services.NewCacheService(cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, running uncached: %v", err)
	}
	defer cache.Close()

	authService := services.NewAuthService(cfg.JWT)

	// The gate validates in-process unless a remote validate endpoint
	// is configured.
	var validator middleware.TokenValidator = middleware.NewLocalValidator(authService)
	if cfg.Auth.ValidateURL != "" {
		log.Printf("Using remote token validation at %s", cfg.Auth.ValidateURL)
		validator = middleware.NewRemoteValidator(cfg.Auth)
	}

	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))
	router.Use(middleware.CountRequests())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "UP",
			"message": "Traffic Management API is running",
		})
	})
	router.GET("/metrics", middleware.MetricsHandler())

	authHandler := handlers.NewAuthHandler(db, authService)
	vehiclesHandler := handlers.NewVehiclesHandler(db)
	signalsHandler := handlers.NewSignalsHandler(db, cache)
	sensorsHandler := handlers.NewSensorsHandler(db, cache)
	violationsHandler := handlers.NewViolationsHandler(db, cache)
	finesHandler := handlers.NewFinesHandler(db)

	router.POST("/signin", authHandler.SignIn)
	router.POST("/auth/validate", authHandler.Validate)

	protected := router.Group("/", middleware.RequireAuth(validator))
	{
		protected.POST("/vehicles/register", vehiclesHandler.Register)
		protected.GET("/vehicles/:id", vehiclesHandler.GetByID)

		protected.PUT("/signals/:id/state", signalsHandler.UpdateState)
		protected.DELETE("/signals/:id", signalsHandler.Delete)

		protected.GET("/sensors/:id/data", sensorsHandler.GetData)
		protected.PUT("/sensors/:id/adjust", sensorsHandler.AdjustCondition)

		protected.POST("/violations/generate", violationsHandler.Generate)
		protected.GET("/violations/:id", violationsHandler.GetByID)
		protected.GET("/violations", violationsHandler.List)

		protected.PUT("/fines/:id/pay", finesHandler.Pay)
	}

	// Websocket handshake carries the token itself, outside the gate
	router.GET("/signals/live", handlers.SignalsLiveWebSocket(cache, authService))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
