package main

import (
	"log/slog"
	"time"

	"github.com/Kiarash-sabbaghii-giit/calculator/services/calc-api/apihandlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	v1 := router.Group("/v1")
	apiModule := apihandlers.NewHTTPHandler(
		conf.EvalConfig.BatchWorkers,
		conf.EvalConfig.MaxBatchSize,
	)

	apiModule.AddRoutes(v1)

	slog.Info("Starting Calculator API on port " + conf.GinConfig.Port)
	err := router.Run(":" + conf.GinConfig.Port)
	if err != nil {
		slog.Error("Exited Calculator API", slog.String("error", err.Error()))
		return
	}
}
